package investApi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/KotFed0t/invest_contracts/config"
	"github.com/KotFed0t/invest_contracts/internal/externalApi"
	"github.com/KotFed0t/invest_contracts/utils"
	"github.com/go-resty/resty/v2"
)

// InvestApi fetches raw response envelopes of the REST api. Decoding is left to the caller.
type InvestApi struct {
	client *resty.Client
}

func New(cfg *config.Config) *InvestApi {
	client := resty.New().
		SetDebug(cfg.API.Debug).
		SetTimeout(cfg.API.Timeout).
		SetBaseURL(cfg.API.InvestApi.Url).
		SetAuthToken(cfg.API.InvestApi.Token)
	return &InvestApi{client: client}
}

// Fetch performs GET /<endpoint> and returns the body as is. Error statuses still carry an
// envelope with status Error, so only an empty body or a transport failure is an error here.
func (a *InvestApi) Fetch(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	rqId := utils.GetRequestIDFromCtx(ctx)
	url := "/" + strings.TrimPrefix(endpoint, "/")

	slog.Debug("start InvestApi.Fetch request", slog.String("rqID", rqId), slog.String("url", url))

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(params).
		Get(url)

	if err != nil {
		slog.Error("error while dialing InvestApi", slog.String("err", err.Error()), slog.String("rqID", rqId))
		return nil, err
	}

	body := resp.Body()
	if len(body) == 0 {
		if resp.StatusCode() >= http.StatusBadRequest {
			return nil, fmt.Errorf("%w: %d on %s", externalApi.ErrUnexpectedStatus, resp.StatusCode(), url)
		}
		return nil, fmt.Errorf("%w: %s", externalApi.ErrEmptyResponse, url)
	}

	slog.Debug(
		"InvestApi.Fetch request complete",
		slog.String("rqID", rqId),
		slog.String("url", url),
		slog.Int("status", resp.StatusCode()),
	)

	return body, nil
}
