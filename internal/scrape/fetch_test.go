package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFetcher_FetchOK(t *testing.T) {
	var gotUA string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`<p>Software Engineer Intern</p>`))
	}))
	defer s.Close()

	f := NewFetcher(FetchConfig{}, nil)
	body := f.Fetch(context.Background(), s.URL)

	assert.Equal(t, `<p>Software Engineer Intern</p>`, body)
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestFetcher_CustomUserAgent(t *testing.T) {
	var gotUA string
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer s.Close()

	f := NewFetcher(FetchConfig{UserAgent: "jobwatch-test/1"}, nil)
	_ = f.Fetch(context.Background(), s.URL)
	assert.Equal(t, "jobwatch-test/1", gotUA)
}

func TestFetcher_FailuresReturnEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		timeout time.Duration
	}{
		{
			name: "non-2xx",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "gone", http.StatusNotFound)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "boom", http.StatusBadGateway)
			},
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(500 * time.Millisecond)
				_, _ = w.Write([]byte("late"))
			},
			timeout: 100 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := httptest.NewServer(tt.handler)
			defer s.Close()

			f := NewFetcher(FetchConfig{Timeout: tt.timeout}, nil)
			assert.Equal(t, "", f.Fetch(context.Background(), s.URL))
		})
	}
}

func TestFetcher_NetworkError(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := s.URL
	s.Close()

	f := NewFetcher(FetchConfig{Timeout: time.Second}, nil)
	assert.Equal(t, "", f.Fetch(context.Background(), url))
}

func TestFetcher_BadURL(t *testing.T) {
	f := NewFetcher(FetchConfig{}, nil)
	assert.Equal(t, "", f.Fetch(context.Background(), "://nope"))
}
