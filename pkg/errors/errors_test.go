// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, classification and lookup helpers

package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/arthur-debert/sharelink/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "source_missing",
			code:    errors.ErrSourceMissing,
			message: "source does not exist",
			wantStr: "[SOURCE_MISSING] source does not exist",
		},
		{
			name:    "not_a_link",
			code:    errors.ErrNotALink,
			message: "refusing to remove real data",
			wantStr: "[NOT_A_LINK] refusing to remove real data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrTargetOccupied, "%s is occupied by %s", "/p/models", "a directory")
	if err.Message != "/p/models is occupied by a directory" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrSymlinkCreate, "create link")

		if err.Code != errors.ErrSymlinkCreate {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrSymlinkCreate)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[SYMLINK_CREATE] create link: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestFromFS(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback errors.ErrorCode
		want     errors.ErrorCode
	}{
		{
			name:     "permission_is_promoted",
			err:      &fs.PathError{Op: "symlink", Path: "/p/models", Err: fs.ErrPermission},
			fallback: errors.ErrSymlinkCreate,
			want:     errors.ErrPermission,
		},
		{
			name:     "wrapped_permission_is_promoted",
			err:      fmt.Errorf("outer: %w", fs.ErrPermission),
			fallback: errors.ErrDirCreate,
			want:     errors.ErrPermission,
		},
		{
			name:     "other_errors_keep_fallback",
			err:      &fs.PathError{Op: "mkdir", Path: "/p/models", Err: fs.ErrExist},
			fallback: errors.ErrDirCreate,
			want:     errors.ErrDirCreate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.FromFS(tt.err, tt.fallback, "op", "/p/models")
			if err.Code != tt.want {
				t.Errorf("FromFS() code = %v, want %v", err.Code, tt.want)
			}
			if err.Details["path"] != "/p/models" {
				t.Errorf("FromFS() path detail = %v", err.Details["path"])
			}
			if !stderrors.Is(err, tt.err) {
				t.Error("FromFS() should keep the original error in the chain")
			}
		})
	}

	t.Run("nil_error_returns_nil", func(t *testing.T) {
		if errors.FromFS(nil, errors.ErrFileAccess, "stat", "/x") != nil {
			t.Error("FromFS(nil) should return nil")
		}
	})
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"source": "/share/models",
		"target": "/project/models",
	}

	err := errors.New(errors.ErrTargetOccupied, "occupied").
		WithDetails(details).
		WithDetail("kind", "directory")

	for k, v := range details {
		if err.Details[k] != v {
			t.Errorf("WithDetails() %s = %v, want %v", k, err.Details[k], v)
		}
	}
	if err.Details["kind"] != "directory" {
		t.Errorf("WithDetail() kind = %v", err.Details["kind"])
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotALink, "error 1")
	err2 := errors.New(errors.ErrNotALink, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with LinkError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrSourceMissing, "missing"),
			code:     errors.ErrSourceMissing,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrSourceMissing, "missing"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrPermission, "denied"),
			code:     errors.ErrPermission,
			expected: true,
		},
		{
			name:     "plain_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrSourceMissing,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrSourceMissing,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCodeAndDetails(t *testing.T) {
	err := errors.New(errors.ErrTargetOccupied, "occupied").WithDetail("target", "/p/input")

	if got := errors.GetErrorCode(err); got != errors.ErrTargetOccupied {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v", got)
	}
	if got := errors.GetErrorDetails(err); got["target"] != "/p/input" {
		t.Errorf("GetErrorDetails() = %v", got)
	}
	if got := errors.GetErrorDetails(nil); got != nil {
		t.Errorf("GetErrorDetails(nil) = %v", got)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read directory")
	linkErr := errors.Wrap(fileErr, errors.ErrSymlinkCreate, "failed to link")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(linkErr, errors.ErrSymlinkCreate) {
			t.Error("Top level should have ErrSymlinkCreate code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var middle *errors.LinkError
		if stderrors.As(linkErr.Unwrap(), &middle) {
			if !errors.IsErrorCode(middle, errors.ErrFileAccess) {
				t.Error("Middle error should have ErrFileAccess code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(linkErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}

func TestReason(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", stderrors.New("boom"), "boom"},
		{"link error", errors.New(errors.ErrNotALink, "target is not a link"), "target is not a link"},
		{"wrapped", errors.Wrap(fs.ErrPermission, errors.ErrSymlinkCreate, "create symlink"), "create symlink: permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Reason(tt.err); got != tt.want {
				t.Errorf("Reason() = %q, want %q", got, tt.want)
			}
		})
	}
}
