package main

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check a running server's liveness and readiness [base-url]"
}

func (c *HealthCheckCommand) Run(args []string) error {
	base := getEnv("LOOTFORGE_URL", defaultBaseURL)
	if len(args) > 0 {
		base = args[0]
	}
	base = strings.TrimRight(base, "/")

	PrintHeader(fmt.Sprintf("Health Check (%s)", base))

	client := &http.Client{Timeout: 5 * time.Second}
	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		if err := checkEndpoint(client, base+path); err != nil {
			PrintError("%s failed: %v", path, err)
			return err
		}
		duration := time.Since(start)
		if duration > time.Second {
			PrintWarning("%s slow response time (%v)", path, duration)
		} else {
			PrintSuccess("%s passed (%v)", path, duration)
		}
	}
	return nil
}

func checkEndpoint(client *http.Client, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
