package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"teamdash/domain/team"
)

func TestWrap_KeepsCode(t *testing.T) {
	base := ConfigInvalid("PORT must be numeric")
	wrapped := Wrap(base, "failed to load server configuration")

	assert.Equal(t, CodeConfigInvalid, GetCode(wrapped))
	assert.Equal(t, "failed to load server configuration: PORT must be numeric", wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, base))
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Nil(t, Wrapf(nil, "ignored %d", 1))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"plain error", stderrors.New("boom"), CodeInternalError},
		{"not found kind", fmt.Errorf("get: %w", team.PersonNotFound), CodeNotFound},
		{"timeout kind", team.ConnectionTimeout, CodeTimeout},
		{"creation kind", team.PersonCreationFailure, CodeInvalidInput},
		{"fetch kind", team.PersonsFetchFailure, CodeInternalError},
		{"render", RenderError("chart", stderrors.New("bad size")), CodeRenderError},
		{"wrapped import", Wrapf(ImportError("roster.xlsx", stderrors.New("eof")), "seed %s", "roster"), CodeImportError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(team.PersonNotFound))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(InvalidInput("bad")))
	assert.Equal(t, http.StatusGatewayTimeout, HTTPStatus(team.ConnectionTimeout))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(stderrors.New("boom")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("member")))
}
