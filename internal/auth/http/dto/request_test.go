package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignUpRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request SignUpRequest
		wantErr bool
	}{
		{
			name:    "Valid",
			request: SignUpRequest{Username: "jacob", Password: "mysuperpassword", Email: "jacob@example.com"},
		},
		{
			name:    "EmailIsOptional",
			request: SignUpRequest{Username: "jacob", Password: "mysuperpassword"},
		},
		{
			name:    "MissingUsername",
			request: SignUpRequest{Password: "mysuperpassword"},
			wantErr: true,
		},
		{
			name:    "MissingPassword",
			request: SignUpRequest{Username: "jacob"},
			wantErr: true,
		},
		{
			name:    "UsernameWithColon",
			request: SignUpRequest{Username: "ja:cob", Password: "mysuperpassword"},
			wantErr: true,
		},
		{
			name:    "InvalidEmail",
			request: SignUpRequest{Username: "jacob", Password: "mysuperpassword", Email: "not-an-email"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
