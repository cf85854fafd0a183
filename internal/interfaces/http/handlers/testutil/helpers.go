package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/estatehub/internal/domain/user"
	"github.com/orris-inc/estatehub/internal/shared/constants"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext builds a handler context for target. A string or []byte body is
// sent as is; anything else is JSON encoded.
func NewTestContext(method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, requestBody(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func requestBody(body any) io.Reader {
	switch b := body.(type) {
	case nil:
		return nil
	case string:
		return bytes.NewBufferString(b)
	case []byte:
		return bytes.NewReader(b)
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			panic(err)
		}
		return bytes.NewReader(encoded)
	}
}

// SetAuthContext stores the caller the way IdentityMiddleware does.
func SetAuthContext(c *gin.Context, userID uint) {
	c.Set(constants.ContextKeyUserID, userID)
}

// SetActor sets the caller and the role the identity middleware would resolve.
func SetActor(c *gin.Context, userID uint, role user.Role) {
	SetAuthContext(c, userID)
	c.Set(constants.ContextKeyUserRole, role)
}

func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

// SetQueryParams replaces the request query string.
func SetQueryParams(c *gin.Context, params map[string]string) {
	q := make(url.Values, len(params))
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

func ParseResponse(w *httptest.ResponseRecorder, target any) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// APIResponse is the envelope written by utils.SuccessResponse and friends.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// DecodeData unmarshals the data field into target.
func (r APIResponse) DecodeData(target any) error {
	return json.Unmarshal(r.Data, target)
}

type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Reason  string `json:"reason,omitempty"`
}
