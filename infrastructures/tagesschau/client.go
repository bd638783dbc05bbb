package tagesschau

import (
	"net/http"
	"net/url"
	"time"

	"github.com/sobadon/ts20/domain/repository"
)

type client struct {
	// 検索用（短めのタイムアウト）
	httpClient *http.Client

	// ダウンロード用（動画 1 本分なので長め）
	downloadClient *http.Client

	searchBaseURL *url.URL

	archiveDir    string
	archivePrefix string
}

func New(archiveDir string, archivePrefix string, searchTimeout time.Duration, downloadTimeout time.Duration) repository.Catalog {
	searchBaseURL, err := url.Parse("https://www.tagesschau.de/api2u/search/")
	if err != nil {
		panic(err)
	}

	return &client{
		httpClient:     &http.Client{Timeout: searchTimeout},
		downloadClient: &http.Client{Timeout: downloadTimeout},
		searchBaseURL:  searchBaseURL,
		archiveDir:     archiveDir,
		archivePrefix:  archivePrefix,
	}
}
