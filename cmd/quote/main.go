// Command quote отправляет запрос на расчёт цены в запущенный сервис
// и печатает ответ.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"

	"margin_engine/pkg/contextx"
	"margin_engine/pkg/httpx"
	"margin_engine/pkg/logx"
	"margin_engine/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func main() {
	var (
		addr    = flag.String("addr", "http://localhost:8080", "service base URL")
		verbose = flag.Bool("v", false, "log HTTP exchange")
		timeout = flag.Duration("timeout", 10*time.Second, "request timeout")
	)

	var request rest.OptimizeRequest

	flag.Float64Var(&request.BaseCost, "base-cost", 15, "base production cost per unit")
	flag.IntVar(&request.OverheadPct, "overhead", 20, "overhead percent [5,40]")
	flag.Float64Var(&request.ShippingCost, "shipping", 2.5, "shipping cost per unit [1,10]")
	flag.IntVar(&request.MarketingPct, "marketing", 10, "marketing percent [0,25]")
	flag.IntVar(&request.OrderQuantity, "quantity", 1000, "order quantity [100,10000]")
	flag.StringVar(&request.Segment, "segment", "Mid-Range", "Budget | Mid-Range | Premium | Luxury")
	flag.StringVar(&request.Season, "season", "Year-round", "Spring/Summer | Fall/Winter | Year-round")
	flag.StringVar(&request.ProductCategory, "category", "", "product category label")
	flag.Parse()

	level := "error"
	if *verbose {
		level = "debug"
	}
	slog.SetDefault(logx.NewLogger(os.Stderr, level, false))

	if err := run(*addr, *timeout, request); err != nil {
		slog.Error("quote failed", logx.Error(err))
		os.Exit(1)
	}
}

func run(addr string, timeout time.Duration, request rest.OptimizeRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ctx = contextx.WithTraceID(ctx, contextx.NewTraceID())

	client := &http.Client{
		Transport: httpx.NewLoggingRoundTripper(
			nil,
			httpx.WithLogFieldMaxLen(4096), //nolint:mnd
			httpx.WithTraceID(),
		),
	}

	response, err := optimize(ctx, client, addr, request)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if err := enc.Encode(response); err != nil {
		return fmt.Errorf("json.Encode: %w", err)
	}

	return nil
}

// optimize отправляет запрос в POST /v1/pricing/optimize. Ответ сервиса с
// ошибкой возвращается как error с кодом и support id.
func optimize(
	ctx context.Context,
	client *http.Client,
	addr string,
	request rest.OptimizeRequest,
) (rest.OptimizeResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return rest.OptimizeResponse{}, fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, addr+"/v1/pricing/optimize", bytes.NewReader(body))
	if err != nil {
		return rest.OptimizeResponse{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return rest.OptimizeResponse{}, fmt.Errorf("client.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResponse rest.Error
		if err := json.NewDecoder(resp.Body).Decode(&errResponse); err != nil {
			return rest.OptimizeResponse{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}

		return rest.OptimizeResponse{}, fmt.Errorf(
			"%s: %s (support id %s)", errResponse.Code, errResponse.Message, errResponse.SupportID,
		)
	}

	var response rest.OptimizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return rest.OptimizeResponse{}, fmt.Errorf("json.Decode: %w", err)
	}

	return response, nil
}
