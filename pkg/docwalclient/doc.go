// Package docwalclient provides the primary entry point for constructing a
// DocWal API client that implements the docwal.Client interface.
//
// It layers configuration normalization and HTTP transport on top of the
// resource interfaces and types defined in the docwal package. Most
// applications should import docwalclient to build a client, then use the
// returned docwal.Client to access resource-specific clients: Credentials(),
// Templates(), APIKeys(), and Team().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/docwal/docwal-go/pkg/docwal"
//	  "github.com/docwal/docwal-go/pkg/docwalclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just an API key, production endpoint.
//	  cli, err := docwalclient.NewWithAPIKey("docwal_live_xxxxx")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with full configuration:
//	  cli, err = docwalclient.New(&docwal.Config{
//	    APIKey:  "docwal_live_xxxxx",
//	    BaseURL: "https://staging.docwal.com/api",
//	    Timeout: 60 * time.Second,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  creds, err := cli.Credentials().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = creds
//	}
//
// The constructor performs no network calls; the first request happens when a
// resource client method is invoked.
package docwalclient
