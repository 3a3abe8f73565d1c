package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"octosupply/pkg/api"
	"octosupply/pkg/client"
	"octosupply/pkg/logger"
	"octosupply/pkg/notify"
	"octosupply/pkg/supply"
)

func startServer(t *testing.T) string {
	t.Helper()
	registry := notify.NewRegistry()
	registry.Register("log", notify.Log(logger.Nop()))
	srv := httptest.NewServer(api.NewRouter(api.Config{
		Stores:    api.NewMemoryStores(supply.SeedData(time.Now())),
		Notifiers: registry,
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func run(t *testing.T, url string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--api-url", url}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestListTable(t *testing.T) {
	url := startServer(t)
	out, err := run(t, url, "list", "branches")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "BRANCHID")
	assert.Contains(t, lines[0], "HEADQUARTERSID")
	assert.Contains(t, lines[1], "Meowtown Branch")
	assert.Contains(t, lines[2], "Tabby Terrace Branch")
}

func TestGetJSONAndYAML(t *testing.T) {
	url := startServer(t)

	out, err := run(t, url, "get", "suppliers", "2", "-o", "json")
	require.NoError(t, err)
	var s supply.Supplier
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "WhiskerWare Systems", s.Name)

	out, err = run(t, url, "get", "suppliers", "2", "-o", "yaml")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Tabitha Pawson", doc["contactPerson"])
	assert.Equal(t, 2, doc["supplierId"])
}

func TestCreateUpdateDelete(t *testing.T) {
	url := startServer(t)

	_, err := run(t, url, "create", "orders", "--data", `{"orderId":7,"branchId":1,"name":"Restock","status":"pending"}`, "-o", "json")
	require.NoError(t, err)

	out, err := run(t, url, "update", "orders", "7", "--data", `{"orderId":7,"name":"Restock","status":"shipped"}`, "-o", "json")
	require.NoError(t, err)
	var o supply.Order
	require.NoError(t, json.Unmarshal([]byte(out), &o))
	assert.Equal(t, "shipped", o.Status)
	assert.Zero(t, o.BranchID)

	out, err = run(t, url, "delete", "orders", "7")
	require.NoError(t, err)
	assert.Equal(t, "deleted orders 7\n", out)

	_, err = run(t, url, "get", "orders", "7")
	assert.EqualError(t, err, "orders 7 not found")
}

func TestCreateSendsDataAsGiven(t *testing.T) {
	url := startServer(t)

	_, err := run(t, url, "create", "branches", "--data", `{"branchId":4,"name":"Siamese Square","mascot":"Mochi"}`)
	require.NoError(t, err)

	got, err := client.Verbatim(client.New(url, nil).Branches()).Get(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, `{"branchId":4,"name":"Siamese Square","mascot":"Mochi"}`, string(got.Bytes()))

	_, err = run(t, url, "create", "branches", "--data", `{"branchId":`)
	assert.ErrorContains(t, err, "parse record")
}

func TestCreateFromStdin(t *testing.T) {
	url := startServer(t)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(`{"headquartersId":2,"name":"Annex"}`))
	cmd.SetArgs([]string{"--api-url", url, "create", "headquarters", "-f", "-", "-o", "json"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"name": "Annex"`)
}

func TestUsageErrors(t *testing.T) {
	url := startServer(t)

	_, err := run(t, url, "list", "cats")
	assert.ErrorContains(t, err, `unknown resource "cats"`)

	_, err = run(t, url, "get", "orders", "one")
	assert.ErrorContains(t, err, "must be an integer")

	_, err = run(t, url, "create", "orders")
	assert.ErrorContains(t, err, "a record is required")

	_, err = run(t, url, "list", "orders", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestProductsSalePrice(t *testing.T) {
	url := startServer(t)
	out, err := run(t, url, "products", "--discounted", "-o", "json")
	require.NoError(t, err)

	var views []struct {
		ProductID int    `json:"productId"`
		Discount  string `json:"discount"`
		SalePrice string `json:"salePrice"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 4)
	assert.Equal(t, 1, views[0].ProductID)
	assert.Equal(t, "25%", views[0].Discount)
	assert.Equal(t, "97.49", views[0].SalePrice)
}

func TestDeliveryStatus(t *testing.T) {
	url := startServer(t)
	out, err := run(t, url, "delivery-status", "1", "delivered", "--notify", "log")
	require.NoError(t, err)
	assert.Contains(t, out, "delivered")
	assert.Contains(t, out, "log: logged delivery 1 status delivered")

	_, err = run(t, url, "delivery-status", "1", "delivered", "--notify", "sh")
	assert.ErrorContains(t, err, "unknown notify action")
}

func TestRenderTableSingleRecord(t *testing.T) {
	var buf bytes.Buffer
	d := 0.25
	require.NoError(t, render(&buf, formatTable, supply.Product{ProductID: 1, Name: "SmartFeeder One", Discount: &d}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "DISCOUNT")
	assert.Contains(t, lines[1], "0.25")

	buf.Reset()
	require.NoError(t, render(&buf, formatTable, supply.Product{ProductID: 2}))
	assert.Contains(t, buf.String(), "-")
}

func TestCellTruncates(t *testing.T) {
	s := cell(reflect.ValueOf(strings.Repeat("é", 60)))
	assert.Equal(t, maxCellWidth, len([]rune(s)))
	assert.True(t, strings.HasSuffix(s, "..."))
}
