package validation

import (
	"testing"

	apperrors "project-tracker-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateUUID4(t *testing.T) {
	upper := "6F9619FF-8B86-4011-B42D-00C04FC964FF"
	empty := ""
	fresh := uuid.New().String()

	testCases := []struct {
		name     string
		value    interface{}
		expected bool
	}{
		{name: "freshly generated v4", value: fresh, expected: true},
		{name: "pointer to v4", value: &fresh, expected: true},
		{name: "upper case hex", value: upper, expected: true},
		{name: "not a uuid", value: "not-a-uuid", expected: false},
		{name: "v1 shaped uuid", value: "a8098c1a-f86e-11da-bd1a-00112444be1e", expected: false},
		{name: "wrong variant nibble", value: "6f9619ff-8b86-4011-c42d-00c04fc964ff", expected: false},
		{name: "braces", value: "{" + fresh + "}", expected: false},
		{name: "urn prefix", value: "urn:uuid:" + fresh, expected: false},
		{name: "missing dashes", value: "6f9619ff8b864011b42d00c04fc964ff", expected: false},
		{name: "empty string", value: empty, expected: false},
		{name: "nil", value: nil, expected: false},
		{name: "nil string pointer", value: (*string)(nil), expected: false},
		{name: "integer", value: 123, expected: false},
		{name: "uuid.UUID value", value: uuid.New(), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ValidateUUID4(tc.value))
		})
	}
}

func TestValidateFlags(t *testing.T) {
	testCases := []struct {
		name     string
		value    interface{}
		expected bool
	}{
		{name: "empty", value: "", expected: true},
		{name: "single flag", value: "urgent;", expected: true},
		{name: "several flags", value: "a;b;c;", expected: true},
		{name: "flags with spaces", value: "needs review;backend;", expected: true},
		{name: "missing trailing delimiter", value: "a;b;c", expected: false},
		{name: "empty token", value: "a;;", expected: true},
		{name: "only delimiter", value: ";", expected: true},
		{name: "text after last delimiter", value: "a;;b", expected: false},
		{name: "integer", value: 123, expected: false},
		{name: "nil", value: nil, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ValidateFlags(tc.value))
		})
	}
}

type sampleRequest struct {
	OwnerID  string `json:"owner_id" validate:"required,uuid4_rfc4122"`
	Username string `json:"username" validate:"required,min=5,max=100"`
	Flags    string `json:"flags" validate:"flags"`
	Level    int    `json:"level" validate:"omitempty,min=1,max=3"`
}

func TestStructTranslation(t *testing.T) {
	v := New()

	t.Run("valid request", func(t *testing.T) {
		err := Struct(v, &sampleRequest{OwnerID: uuid.New().String(), Username: "someone", Flags: "a;"})
		assert.NoError(t, err)
	})

	t.Run("empty wins over format", func(t *testing.T) {
		err := Struct(v, &sampleRequest{OwnerID: "bad", Username: ""})
		assert.True(t, apperrors.IsEmptyValue(err))
		assert.Contains(t, err.Error(), "username")
	})

	t.Run("too short", func(t *testing.T) {
		err := Struct(v, &sampleRequest{OwnerID: uuid.New().String(), Username: "abc"})
		var short *apperrors.ValueTooShortError
		assert.ErrorAs(t, err, &short)
		assert.Equal(t, 5, short.Length)
		assert.Equal(t, "username", short.Field)
	})

	t.Run("malformed uuid", func(t *testing.T) {
		err := Struct(v, &sampleRequest{OwnerID: "not-a-uuid", Username: "someone"})
		assert.True(t, apperrors.IsInvalidInput(err))
		assert.Contains(t, err.Error(), "owner_id")
	})

	t.Run("malformed flags", func(t *testing.T) {
		err := Struct(v, &sampleRequest{OwnerID: uuid.New().String(), Username: "someone", Flags: "a;b"})
		assert.True(t, apperrors.IsInvalidInput(err))
		assert.Contains(t, err.Error(), "flags")
	})

	t.Run("number out of range", func(t *testing.T) {
		err := Struct(v, &sampleRequest{OwnerID: uuid.New().String(), Username: "someone", Level: 4})
		assert.True(t, apperrors.IsInvalidInput(err))
		assert.Contains(t, err.Error(), "maximum is 3")

		err = Struct(v, &sampleRequest{OwnerID: uuid.New().String(), Username: "someone", Level: -2})
		assert.True(t, apperrors.IsInvalidInput(err))
		assert.Contains(t, err.Error(), "minimum is 1")
	})

	t.Run("oversized field", func(t *testing.T) {
		long := make([]byte, 101)
		for i := range long {
			long[i] = 'x'
		}
		err := Struct(v, &sampleRequest{OwnerID: uuid.New().String(), Username: string(long)})
		assert.True(t, apperrors.IsInvalidInput(err))
	})
}
