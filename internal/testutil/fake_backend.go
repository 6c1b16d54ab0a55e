// Package testutil provides fakes for the credential endpoint, the object
// store and the status region.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

const (
	PresignPath = "/prod/presign"
	BucketPath  = "/bucket/uploads"
)

// Call is one request received by the FakeBackend.
type Call struct {
	Method      string
	Path        string
	ContentType string
	FileName    string
	FileType    string
	Body        []byte
}

// FakeBackend plays both the credential endpoint and the object store. Any
// file name without a configured status succeeds.
type FakeBackend struct {
	Server *httptest.Server

	mu            sync.Mutex
	calls         []Call
	objects       map[string][]byte
	presignStatus map[string]int
	putStatus     map[string]int
}

func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fb := &FakeBackend{
		objects:       make(map[string][]byte),
		presignStatus: make(map[string]int),
		putStatus:     make(map[string]int),
	}

	engine := gin.New()
	engine.POST(PresignPath, fb.presign)
	engine.PUT(BucketPath+"/:name", fb.put)

	fb.Server = httptest.NewServer(engine)
	t.Cleanup(fb.Server.Close)
	return fb
}

func (fb *FakeBackend) PresignURL() string {
	return fb.Server.URL + PresignPath
}

func (fb *FakeBackend) Client() *http.Client {
	return fb.Server.Client()
}

// FailPresign makes the credential endpoint answer status for fileName.
func (fb *FakeBackend) FailPresign(fileName string, status int) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.presignStatus[fileName] = status
}

// FailPut makes the object store answer status for fileName.
func (fb *FakeBackend) FailPut(fileName string, status int) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.putStatus[fileName] = status
}

func (fb *FakeBackend) Calls() []Call {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]Call(nil), fb.calls...)
}

// CallsFor returns the calls that concern fileName, in arrival order.
func (fb *FakeBackend) CallsFor(fileName string) []Call {
	var out []Call
	for _, c := range fb.Calls() {
		if c.FileName == fileName {
			out = append(out, c)
		}
	}
	return out
}

func (fb *FakeBackend) Object(fileName string) ([]byte, bool) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	b, ok := fb.objects[fileName]
	return b, ok
}

type presignRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

func (fb *FakeBackend) presign(c *gin.Context) {
	var req presignRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FileName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fileName is required"})
		return
	}

	fb.mu.Lock()
	fb.calls = append(fb.calls, Call{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		ContentType: c.ContentType(),
		FileName:    req.FileName,
		FileType:    req.FileType,
	})
	status, failing := fb.presignStatus[req.FileName]
	fb.mu.Unlock()

	if failing {
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"presignedUrl": fb.Server.URL + BucketPath + "/" + req.FileName + "?X-Amz-Expires=3600&X-Amz-Signature=test",
		"fileName":     "uploads/" + req.FileName,
		"expiresIn":    3600,
	})
}

func (fb *FakeBackend) put(c *gin.Context) {
	name := c.Param("name")
	body, _ := io.ReadAll(c.Request.Body)

	fb.mu.Lock()
	fb.calls = append(fb.calls, Call{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		ContentType: c.GetHeader("Content-Type"),
		FileName:    name,
		Body:        body,
	})
	status, failing := fb.putStatus[name]
	if !failing {
		fb.objects[name] = body
	}
	fb.mu.Unlock()

	if failing {
		c.String(status, "<Error><Code>AccessDenied</Code></Error>")
		return
	}

	c.Header("ETag", `"fake-etag"`)
	c.Status(http.StatusOK)
}
