package myhttp

import (
	"fmt"
	"os"
)

// GuessHostnameWithScheme derives the public base-url of this service without
// having a request at hand, as needed when registering push-subscriptions.
func GuessHostnameWithScheme() string {
	if hostname := os.Getenv("PUBLIC_HOSTNAME"); hostname != "" {
		return hostname
	}

	if project := os.Getenv("GOOGLE_CLOUD_PROJECT"); project != "" {
		return fmt.Sprintf("https://%s.appspot.com", project)
	}

	return "http://localhost:8080"
}
