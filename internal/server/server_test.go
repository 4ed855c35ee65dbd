package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seedhiai/resume-matcher/internal/catalog"
	"github.com/seedhiai/resume-matcher/internal/match"
)

type stubEncoder struct {
	def []float32
}

func (s *stubEncoder) Encode(_ context.Context, _ string) ([]float32, error) {
	return s.def, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	csv := `company,description,role,required_skills,location,date_posted,salary,application
Acme,Build services,Backend Engineer,"Python, SQL, AWS",Remote,2024-01-02,,"<a href=""https://acme.example/apply"">Apply Now</a>"
`
	cat, err := catalog.Load(strings.NewReader(csv))
	require.NoError(t, err)

	engine := match.New(cat, &stubEncoder{def: []float32{0, 1}})
	return New(engine, zap.NewNop(), nil)
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/match-resume", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestRootHealth(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "resume matcher backend is running"}`, rec.Body.String())
}

func TestMatchResumeUnsupportedType(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, uploadRequest(t, "resume.exe", []byte("binary")))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "Unsupported file type: exe"}`, rec.Body.String())
}

func TestMatchResumeMissingFile(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/match-resume", nil)
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchResumeTxtEndToEnd(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, uploadRequest(t, "resume.txt", []byte("python sql")))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Recommendations []match.Recommendation `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Recommendations, 1)

	got := resp.Recommendations[0]
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, 2, got.KeywordMatches)
	assert.Equal(t, []string{"python", "sql"}, got.MatchedKeywords)
	assert.Equal(t, "https://acme.example/apply", got.ApplicationURL)
	assert.Equal(t, "Apply Now", got.ApplicationLabel)
	assert.Equal(t, "Not specified", got.Salary)
}

func TestMatchResumeMalformedPDF(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, uploadRequest(t, "resume.pdf", []byte("not a pdf")))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestMatchResumeFilenameWithoutExtensionDefaultsToPDF(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()

	// No extension: treated as pdf, which this payload is not.
	srv.Router().ServeHTTP(rec, uploadRequest(t, "resume", []byte("plain words")))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"resume.pdf", "pdf"},
		{"Resume.DOCX", "docx"},
		{"cv.final.txt", "txt"},
		{"resume", "pdf"},
		{"archive.tar.gz", "gz"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extensionOf(tt.filename))
	}
}
