package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DanielPopoola/stripeapi-go/internal/config"
	"github.com/DanielPopoola/stripeapi-go/pkg/request"
	"github.com/DanielPopoola/stripeapi-go/pkg/stripeapi"
	"github.com/DanielPopoola/stripeapi-go/pkg/transport"
	"github.com/prometheus/client_golang/prometheus"
)

const usage = `usage: stripe-sample <command> [args]

commands:
  customer <id>
  customer-create [email]
  products
  account [id]
  fees
  fee <id>
  fee-refunds <feeID>
  bank-accounts <accountID>`

var errUsage = errors.New(usage)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	registry := prometheus.NewRegistry()
	session := transport.NewHTTPSession(cfg.Stripe,
		transport.WithLogger(logger),
		transport.WithMetrics(transport.NewMetrics(registry)),
	)
	client := stripeapi.New(session)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = dispatch(ctx, client, os.Args[1:])
	if cerr := session.Close(); cerr != nil {
		logger.Warn("session close failed", "error", cerr)
	}
	logRequestCounts(logger, registry)

	if errors.Is(err, errUsage) {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		logger.Error("request failed",
			"error", err,
			"category", transport.Categorize(err),
			"status", transport.StatusCode(err),
		)
		os.Exit(1)
	}
}

func dispatch(ctx context.Context, client *stripeapi.Client, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]

	arg := func(i int) (string, bool) {
		if i < len(rest) {
			return rest[i], true
		}
		return "", false
	}

	switch cmd {
	case "customer":
		id, ok := arg(0)
		if !ok {
			return errUsage
		}
		return run(ctx, client.Customers.Retrieve(id))
	case "customer-create":
		email, ok := arg(0)
		params := stripeapi.CustomerCreateParams{}
		if ok {
			params.Email = request.Some(email)
		}
		return run(ctx, client.Customers.Create(params))
	case "products":
		return run(ctx, client.Products.All(request.ListParams{}))
	case "account":
		id, ok := arg(0)
		accountID := request.None[string]()
		if ok {
			accountID = request.Some(id)
		}
		return run(ctx, client.Connect.Accounts.Retrieve(accountID))
	case "fees":
		return run(ctx, client.Connect.Fees.All(stripeapi.FeeListParams{}))
	case "fee":
		id, ok := arg(0)
		if !ok {
			return errUsage
		}
		return run(ctx, client.Connect.Fees.Retrieve(id))
	case "fee-refunds":
		feeID, ok := arg(0)
		if !ok {
			return errUsage
		}
		return run(ctx, client.Connect.FeeRefunds.All(feeID, request.ListParams{}))
	case "bank-accounts":
		accountID, ok := arg(0)
		if !ok {
			return errUsage
		}
		return run(ctx, client.Connect.BankAccounts.All(accountID, request.ListParams{}))
	default:
		return errUsage
	}
}

// run sends call asynchronously, waits for the handler and prints the result.
// Cancelling ctx cancels the in-flight task.
func run[T any](ctx context.Context, call *stripeapi.Call[T]) error {
	var (
		result *T
		err    error
	)
	task := call.Send(ctx, func(v *T, e error) {
		result, err = v, e
	})
	if task != nil {
		task.Wait()
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func logRequestCounts(logger *slog.Logger, registry *prometheus.Registry) {
	families, err := registry.Gather()
	if err != nil {
		logger.Debug("metrics gather failed", "error", err)
		return
	}
	for _, mf := range families {
		if mf.GetName() != "stripe_client_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			attrs := []any{"count", m.GetCounter().GetValue()}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			logger.Debug("stripe requests", attrs...)
		}
	}
}
