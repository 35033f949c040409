package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sonikrishna9/Tenda-admin/client"
	"github.com/sonikrishna9/Tenda-admin/draft"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	res, err := c.Do(context.Background(), "POST", "api/thing", map[string]string{"name": "x"})
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"name":"x"}`, string(gotBody))
	assert.True(t, res.Success)
	assert.Equal(t, "ok", res.Message)
}

func TestMultipartBody(t *testing.T) {
	var gotName, gotFile string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotName = r.FormValue("categoryname")
		_, fh, err := r.FormFile("images")
		require.NoError(t, err)
		gotFile = fh.Filename
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	sub := draft.NewSubmission()
	sub.AddField("categoryname", "Networking")
	sub.AddFile("images", draft.FileFromBytes("cat.png", "image/png", []byte("png")))

	c := client.New(srv.URL)
	res, err := c.Do(context.Background(), "POST", "api/parentcategory/create", sub)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "Networking", gotName)
	assert.Equal(t, "cat.png", gotFile)
}

func TestLegacyMisspelledSuccessFlag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sucess":true}`))
	}))
	defer srv.Close()

	res, err := client.New(srv.URL).Do(context.Background(), "GET", "api/product/allproducts", nil)
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestServerErrorSurfacesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Title is required"}`))
	}))
	defer srv.Close()

	res, err := client.New(srv.URL).Do(context.Background(), "POST", "api/product/createproduct", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Title is required")
	require.NotNil(t, res)
	assert.False(t, res.Success)
}

func TestDecodeFullBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success":  true,
			"products": []map[string]any{{"title": "Router X1"}},
		})
	}))
	defer srv.Close()

	res, err := client.New(srv.URL).Do(context.Background(), "GET", "api/product/allproducts", nil)
	require.NoError(t, err)

	var payload struct {
		Products []struct {
			Title string `json:"title"`
		} `json:"products"`
	}
	require.NoError(t, res.Decode(&payload))
	require.Len(t, payload.Products, 1)
	assert.Equal(t, "Router X1", payload.Products[0].Title)
}

func TestBaseURLFromEnvironment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ping", r.URL.Path)
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	t.Setenv(client.EnvBaseURL, srv.URL)
	res, err := client.New("").Do(context.Background(), "GET", "/api/ping", nil)
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestPathJoining(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	base := srv.URL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	_, err := client.New(base).Do(context.Background(), "GET", "api/blog/get-all", nil)
	require.NoError(t, err)
	assert.Equal(t, "/api/blog/get-all", gotPath)
}
