// Package docwal provides types, interfaces, and errors for working with the
// DocWal credentialing API.
//
// # Overview
//
// The docwal package defines the domain types (Credential, Template,
// TeamMember, ...) and the interfaces for resource-oriented clients
// (CredentialsClient, TemplatesClient, APIKeysClient, TeamClient). A concrete
// implementation is provided by the docwalclient package, which wires
// configuration and transport. Most consumers should import docwalclient to
// construct a client and then interact with the interfaces exposed here.
//
// Getting a client
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
//	  cli, err := docwalclient.New(&docwal.Config{APIKey: "docwal_live_xxxxx"})
//	  if err != nil { log.Fatal(err) }
//
//	  result, err := cli.Credentials().Issue(ctx, &docwal.IssueCredentialRequest{
//	    TemplateID:      "template-123",
//	    IndividualEmail: "student@example.com",
//	    CredentialData: map[string]interface{}{
//	      "student_name":    "John Doe",
//	      "degree":          "Bachelor of Science",
//	      "graduation_date": "2024-05-15",
//	    },
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = result
//	}
//
// # Errors
//
// Every failed API call returns a *docwal.Error carrying a Kind, a
// human-readable message, and, for HTTP error responses, the status code and
// raw response body. Helpers such as IsNotFound, IsAuthentication, and
// IsRateLimit make it easy to branch on common cases:
//
//	cred, err := cli.Credentials().Get(ctx, docID)
//	if docwal.IsNotFound(err) {
//	  // unknown doc_id
//	}
//
// The SDK performs no retries and no caching; a failed call surfaces
// immediately and the caller owns any retry policy.
package docwal
