//go:build integration
// +build integration

package repository

import (
	"testing"

	"project-tracker-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	testutils.Main(m)
}
