// Package docker provides a wrapper around the Docker SDK client.
package docker

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/docker/docker/client"
)

// Client wraps the Docker SDK client with additional functionality.
type Client struct {
	*client.Client
}

// NewClient creates a Docker client pinned to a single API version.
// host is a docker host URL such as unix:///var/run/docker.sock or the
// tcp:// address of a socket proxy. Version negotiation is disabled so every
// request goes to the same versioned path, e.g. /v1.41/containers/json.
func NewClient(host, apiVersion string) (*Client, error) {
	cli, err := client.NewClientWithOpts(
		client.WithHost(host),
		client.WithVersion(apiVersion),
	)
	if err != nil {
		log.Printf("Failed to create Docker client: %v", err)
		return nil, err
	}

	log.Printf("Docker client created for %s (API v%s)", host, cli.ClientVersion())
	return &Client{Client: cli}, nil
}

// Ping verifies connection to the Docker daemon.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Client.Ping(ctx)
	if err != nil {
		log.Printf("Docker daemon ping failed: %v", err)
		return err
	}
	return nil
}

// ContainerListJSON requests /v{version}/containers/json without query
// parameters and returns the undecoded response body. The caller closes it.
// Created may be a string or a number depending on the proxy in front of the
// runtime, so decoding is left to the caller.
func (c *Client) ContainerListJSON(ctx context.Context) (io.ReadCloser, error) {
	hostURL, err := client.ParseHostURL(c.DaemonHost())
	if err != nil {
		return nil, fmt.Errorf("invalid docker host: %w", err)
	}

	// Socket transports dial the configured path and ignore the URL host.
	host := hostURL.Host
	if hostURL.Scheme == "unix" || hostURL.Scheme == "npipe" {
		host = "docker"
	}
	endpoint := url.URL{
		Scheme: "http",
		Host:   host,
		Path:   "/v" + c.ClientVersion() + "/containers/json",
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build container list request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request container list: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("container list returned %s: %s", resp.Status, body)
	}
	return resp.Body, nil
}
