// Command lookup resolves a single company record against file-based
// reference data and prints the match result as JSON. Intended for spot
// checks and data debugging, not serving.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kyc-tools/companymatch/internal/adapter/source"
	"github.com/kyc-tools/companymatch/internal/adapter/suffixlist"
	"github.com/kyc-tools/companymatch/internal/domain"
	"github.com/kyc-tools/companymatch/internal/index"
	"github.com/kyc-tools/companymatch/internal/matcher"
)

func main() {
	registryPath := flag.String("registry", "data/companies_house.json", "Path to the registry JSON file")
	creditPath := flag.String("credit", "data/credit_bureau.csv", "Path to the credit bureau CSV file")
	name := flag.String("name", "", "Company name to resolve (required)")
	website := flag.String("website", "", "Company website")
	postcode := flag.String("postcode", "", "Company postcode")
	strict := flag.Bool("strict", false, "Apply strict domain validation to the high tier")
	flag.Parse()

	if *name == "" {
		fmt.Fprintln(os.Stderr, "usage: lookup -name <company name> [-website ...] [-postcode ...]")
		os.Exit(2)
	}

	ctx := context.Background()

	registryRecords, err := source.NewRegistryFile(*registryPath).RegistryRecords(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lookup: %v\n", err)
		os.Exit(1)
	}
	creditRecords, err := source.NewCreditFile(*creditPath).CreditRecords(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lookup: %v\n", err)
		os.Exit(1)
	}

	idx, err := index.Build(registryRecords, creditRecords)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lookup: %v\n", err)
		os.Exit(1)
	}

	var opts []matcher.Option
	if *strict {
		opts = append(opts, matcher.StrictDomainValidation(suffixlist.Builtin()))
	}

	result, err := matcher.Find(domain.Query{
		Name:     *name,
		Website:  *website,
		Postcode: *postcode,
	}, idx, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lookup: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "lookup: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
