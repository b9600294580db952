package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/imgkeeper/internal/common"
	"github.com/dmitrijs2005/imgkeeper/internal/logging"
	"github.com/go-resty/resty/v2"
)

// ImgurProvider uploads through the Imgur v3 API with an anonymous
// Client-ID.
type ImgurProvider struct {
	client  *resty.Client
	baseURL string
	log     logging.Logger
}

func NewImgurProvider(baseURL string, timeout time.Duration, log logging.Logger) *ImgurProvider {
	client := resty.New().SetTimeout(timeout)
	return &ImgurProvider{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

// imgurResponse is the envelope of every API reply. Data is an object on
// upload and on failure, a bare boolean on successful delete.
type imgurResponse struct {
	Success bool            `json:"success"`
	Status  int             `json:"status"`
	Data    json.RawMessage `json:"data"`
}

type imgurData struct {
	Link       string          `json:"link"`
	Deletehash string          `json:"deletehash"`
	Error      json.RawMessage `json:"error"`
}

func (r *imgurResponse) data() imgurData {
	var d imgurData
	_ = json.Unmarshal(r.Data, &d)
	return d
}

// errorMessage handles both {"error": "text"} and
// {"error": {"message": "text"}}.
func (d imgurData) errorMessage() string {
	if len(d.Error) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(d.Error, &s); err == nil {
		return s
	}
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(d.Error, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}
	return string(d.Error)
}

func (p *ImgurProvider) RequiresCredential() bool {
	return true
}

func (p *ImgurProvider) request(ctx context.Context, credential string) *resty.Request {
	return p.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Client-ID "+credential)
}

func (p *ImgurProvider) Upload(ctx context.Context, src Source, credential string) (Result, error) {
	req := p.request(ctx, credential)
	if src.IsURL() {
		req.SetFormData(map[string]string{"image": src.URL, "type": "url"})
	} else {
		req.SetFileReader("image", src.Name, bytes.NewReader(src.Data))
	}

	resp, err := req.Post(p.baseURL + "/3/image")
	if err != nil {
		return Result{}, &common.UploadError{Source: src.String(), Err: err}
	}

	var body imgurResponse
	_ = json.Unmarshal(resp.Body(), &body)
	data := body.data()

	if resp.IsError() {
		msg := data.errorMessage()
		if msg == "" {
			msg = fmt.Sprintf("HTTP error! status: %d", resp.StatusCode())
		}
		return Result{}, &common.UploadError{Source: src.String(), Status: resp.StatusCode(), Message: msg}
	}

	if !body.Success || data.Link == "" {
		msg := data.errorMessage()
		if msg == "" {
			msg = "unknown error during upload"
		}
		return Result{}, &common.UploadError{Source: src.String(), Status: resp.StatusCode(), Message: msg}
	}

	p.log.Debug(ctx, "imgur upload done", "source", src.String(), "link", data.Link)
	return Result{Link: data.Link, Deletehash: data.Deletehash}, nil
}

func (p *ImgurProvider) Delete(ctx context.Context, deletehash, credential string) error {
	resp, err := p.request(ctx, credential).
		SetPathParam("hash", deletehash).
		Delete(p.baseURL + "/3/image/{hash}")
	if err != nil {
		return &common.RemoteDeleteError{Deletehash: deletehash, Err: err}
	}

	var body imgurResponse
	_ = json.Unmarshal(resp.Body(), &body)

	if resp.IsError() || !body.Success {
		msg := body.data().errorMessage()
		if msg == "" {
			msg = fmt.Sprintf("HTTP error! status: %d", resp.StatusCode())
		}
		return &common.RemoteDeleteError{Deletehash: deletehash, Message: msg}
	}

	p.log.Debug(ctx, "imgur image deleted", "deletehash", deletehash)
	return nil
}
