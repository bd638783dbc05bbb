package tagesschau

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/ts20/domain/model/broadcast"
	"github.com/sobadon/ts20/domain/model/date"
	"github.com/sobadon/ts20/internal/errutil"
)

// 固定クエリ
// 20 時の回以外も混ざって返ってくるので取得後にフィルタする
const searchText = "tagesschau 20:00 Uhr"

// 2023-04-21T20:00:00.000+02:00
const resultDateLayout = "2006-01-02T15:04:05.000-07:00"

// streams の中から選ぶバリアント
const streamVariant = "h264xl"

type searchResponse struct {
	// SearchText string `json:"searchText"`
	// TotalItemCount int `json:"totalItemCount"`
	Results []searchResult `json:"results"`
}

type searchResult struct {
	// tagesschau 20:00 Uhr, 21.04.2023
	Title string `json:"title"`

	// 2023-04-21T20:00:00.000+02:00
	Date string `json:"date"`

	// h264s / h264m / h264xl / adaptivestreaming -> URL
	Streams map[string]string `json:"streams"`
}

func (c *client) Search(ctx context.Context) ([]broadcast.Entry, error) {
	searchURL := buildSearchURL(c.searchBaseURL)
	log.Ctx(ctx).Debug().Msgf("http get target url: %s", searchURL.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrInternal, err.Error())
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrRemoteUnavailable, err.Error())
	}

	if res.StatusCode != 200 {
		return nil, errors.Wrapf(errutil.ErrRemoteUnavailable, "http status code is %d", res.StatusCode)
	}

	defer res.Body.Close()
	searchRes, err := decodeToSearchResponse(res.Body)
	if err != nil {
		return nil, err
	}

	var entries []broadcast.Entry
	for _, result := range searchRes.Results {
		entry, err := searchResultToEntry(result, c.archiveDir, c.archivePrefix)
		if err != nil {
			// 1 件壊れていても検索全体は失敗させない
			log.Ctx(ctx).Warn().Msgf("skip malformed search result (title = %s): %+v", result.Title, err)
			continue
		}
		if entry == nil {
			// 20:00 の回ではない
			continue
		}
		entries = append(entries, *entry)
	}

	log.Ctx(ctx).Info().Msgf("successfully fetched search results (len = %d)", len(entries))
	return entries, nil
}

func buildSearchURL(baseURL *url.URL) *url.URL {
	queries := baseURL.Query()
	queries.Set("searchText", searchText)
	baseURL.RawQuery = queries.Encode()
	return baseURL
}

func decodeToSearchResponse(input io.Reader) (*searchResponse, error) {
	var searchRes searchResponse
	decoder := json.NewDecoder(input)
	err := decoder.Decode(&searchRes)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrRemoteUnavailable, err.Error())
	}
	return &searchRes, nil
}

// searchResult -> broadcast.Entry
// 20:00 の回でなければ (nil, nil)
// 残すべき回なのにフィールドが欠けていれば errutil.ErrMalformedEntry
func searchResultToEntry(result searchResult, archiveDir string, archivePrefix string) (*broadcast.Entry, error) {
	ts, err := time.Parse(resultDateLayout, result.Date)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrMalformedEntry, err.Error())
	}

	if ts.Format("15:04") != broadcast.EditionTime {
		return nil, nil
	}

	sourceURL, ok := result.Streams[streamVariant]
	if !ok || sourceURL == "" {
		return nil, errors.Wrapf(errutil.ErrMalformedEntry, "stream variant %s not found", streamVariant)
	}

	d := date.New(ts.Year(), ts.Month(), ts.Day())
	entry := &broadcast.Entry{
		Date:       d,
		Time:       broadcast.EditionTime,
		Timezone:   ts.Format("-07:00"),
		SourceURL:  sourceURL,
		TargetPath: broadcast.TargetPath(archiveDir, archivePrefix, d),
	}
	return entry, nil
}
