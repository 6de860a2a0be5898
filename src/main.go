// @title        Onboarding Logger API
// @version      1.0
// @description  Append-only ingestion of form interaction events and final submissions, with token-gated NDJSON export.
// @BasePath     /
// @securityDefinitions.apikey BearerToken
// @in           header
// @name         Authorization
package main

import "onboarding-logger/src/cmd"

func main() {
	cmd.Execute()
}
