package main

import (
	"fmt"
	"os"

	"github.com/conduitqa/conduit-contract-tests/client"
	"github.com/conduitqa/conduit-contract-tests/conduittests"
	"github.com/conduitqa/conduit-contract-tests/config"
	"github.com/conduitqa/conduit-contract-tests/framework"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	var cfg config.Config
	var err error
	if params.envName != "" {
		cfg, err = config.LoadEnvironment(params.envName, params.configFile)
	} else {
		cfg, err = config.Load(params.configFile)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("Authenticating against %s as %s\n", cfg.APIBaseURL, cfg.UserEmail)
	token, err := client.Login(cfg.APIBaseURL, cfg.UserEmail, cfg.UserPassword)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Authentication error: %s\n", err)
		os.Exit(1)
	}

	fmt.Println()
	framework.PrintFilterDescription(params.filters)

	fmt.Printf("Running test suite against the %s environment\n", cfg.Name)

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	suite := &conduittests.SuiteConfig{
		Config:          cfg,
		AuthToken:       token,
		SchemaRoot:      params.schemaRoot,
		GenerateSchemas: params.generateSchemas,
	}
	results := conduittests.RunTestSuite(suite, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To rerun only the failed tests:")
		fmt.Printf("  %s\n", params.rerunCommand(os.Args[0], results.Failures))
		os.Exit(1)
	}
}
