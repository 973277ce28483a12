package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"itinero/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, userID string) string {
	t.Helper()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	require.NoError(t, err)
	return token
}

func echoUserID(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if id, ok := r.Context().Value(globals.UserIDKey).(string); ok {
		w.Write([]byte(id))
		return
	}
	w.Write([]byte("anonymous"))
}

func TestAuthenticate_MissingToken(t *testing.T) {
	w := httptest.NewRecorder()
	Authenticate(echoUserID)(w, httptest.NewRequest("GET", "/", nil), nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_RejectsNonBearerHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", signToken(t, "user-1"))

	w := httptest.NewRecorder()
	Authenticate(echoUserID)(w, r, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_InjectsUserID(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+signToken(t, "user-1"))

	w := httptest.NewRecorder()
	Authenticate(echoUserID)(w, r, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", w.Body.String())
}

func TestOptionalAuth_ProceedsWithoutToken(t *testing.T) {
	w := httptest.NewRecorder()
	OptionalAuth(echoUserID)(w, httptest.NewRequest("GET", "/", nil), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())
}

func TestChain_ComposesLeftToRight(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next httprouter.Handle) httprouter.Handle {
			return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
				order = append(order, name)
				next(w, r, ps)
			}
		}
	}

	h := Chain(tag("outer"), tag("inner"))(func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
		order = append(order, "handler")
	})
	h(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil), nil)

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}
