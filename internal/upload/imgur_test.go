package upload

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/imgkeeper/internal/common"
	"github.com/dmitrijs2005/imgkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImgur(t *testing.T, h http.HandlerFunc) *ImgurProvider {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return NewImgurProvider(ts.URL+"/", 5*time.Second, logging.NewNop())
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestImgur_UploadFile(t *testing.T) {
	p := newImgur(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/3/image", r.URL.Path)
		assert.Equal(t, "Client-ID abc", r.Header.Get("Authorization"))

		f, hdr, err := r.FormFile("image")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, pngBytes, data)
		assert.Equal(t, "cat.png", hdr.Filename)

		writeJSON(w, 200, `{"success":true,"status":200,"data":{"link":"https://i.imgur.com/abc.png","deletehash":"dh1"}}`)
	})

	res, err := p.Upload(context.Background(), Source{Name: "cat.png", Data: pngBytes}, "abc")
	require.NoError(t, err)
	assert.Equal(t, Result{Link: "https://i.imgur.com/abc.png", Deletehash: "dh1"}, res)
	assert.True(t, p.RequiresCredential())
}

func TestImgur_UploadURL(t *testing.T) {
	p := newImgur(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "https://example.com/a.png", r.PostForm.Get("image"))
		assert.Equal(t, "url", r.PostForm.Get("type"))
		writeJSON(w, 200, `{"success":true,"data":{"link":"https://i.imgur.com/u.png","deletehash":"dh2"}}`)
	})

	res, err := p.Upload(context.Background(), Source{URL: "https://example.com/a.png"}, "abc")
	require.NoError(t, err)
	assert.Equal(t, "dh2", res.Deletehash)
}

func TestImgur_UploadErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"error string", 400, `{"success":false,"status":400,"data":{"error":"Bad image"}}`, "Bad image"},
		{"error object", 400, `{"success":false,"data":{"error":{"code":1003,"message":"File type invalid"}}}`, "File type invalid"},
		{"non json", 502, `<html>bad gateway</html>`, "HTTP error! status: 502"},
		{"success false on 200", 200, `{"success":false,"data":{"error":"Over capacity"}}`, "Over capacity"},
		{"success without link", 200, `{"success":true,"data":{}}`, "unknown error during upload"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newImgur(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			_, err := p.Upload(context.Background(), Source{Name: "a.png", Data: pngBytes}, "abc")
			var ue *common.UploadError
			require.True(t, errors.As(err, &ue))
			assert.Equal(t, tt.wantMsg, ue.Message)
			assert.Equal(t, tt.status, ue.Status)
			assert.Equal(t, "a.png", ue.Source)
		})
	}
}

func TestImgur_UploadTransportError(t *testing.T) {
	p := NewImgurProvider("http://127.0.0.1:1", time.Second, logging.NewNop())

	_, err := p.Upload(context.Background(), Source{Name: "a.png", Data: pngBytes}, "abc")
	var ue *common.UploadError
	require.True(t, errors.As(err, &ue))
	assert.NotNil(t, ue.Err)
}

func TestImgur_Delete(t *testing.T) {
	p := newImgur(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/3/image/dh1", r.URL.Path)
		assert.Equal(t, "Client-ID abc", r.Header.Get("Authorization"))
		writeJSON(w, 200, `{"success":true,"status":200,"data":true}`)
	})

	require.NoError(t, p.Delete(context.Background(), "dh1", "abc"))
}

func TestImgur_DeleteFailure(t *testing.T) {
	p := newImgur(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 403, `{"success":false,"status":403,"data":{"error":"Permission denied"}}`)
	})

	err := p.Delete(context.Background(), "dh1", "abc")
	var de *common.RemoteDeleteError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "dh1", de.Deletehash)
	assert.Equal(t, "failed to delete: Permission denied", de.Error())
}
