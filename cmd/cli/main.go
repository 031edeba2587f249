package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"
)

const defaultBaseURL = "http://localhost:8080"

func main() {
	global := flag.NewFlagSet("gemdash", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	client := &http.Client{Timeout: 15 * time.Second}

	cmd := args[0]
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}

	switch cmd {
	case "overview":
		getAndPrint(client, *baseURL+"/overview")
	case "products":
		handleProducts(client, *baseURL, sub, args[2:])
	case "comments":
		if sub == "timeseries" {
			getAndPrint(client, *baseURL+"/comments/timeseries")
		} else {
			getAndPrint(client, *baseURL+"/comments")
		}
	case "questions":
		getAndPrint(client, *baseURL+"/questions")
	case "brands":
		handleBrands(client, *baseURL, sub, args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleProducts(client *http.Client, baseURL, sub string, rest []string) {
	switch sub {
	case "search":
		q := ""
		if len(rest) > 0 {
			q = rest[0]
		}
		getAndPrint(client, baseURL+"/products?q="+url.QueryEscape(q))
	case "show":
		if len(rest) == 0 {
			log.Fatal("usage: gemdash products show <name>")
		}
		getAndPrint(client, baseURL+"/products/"+url.PathEscape(rest[0]))
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleBrands(client *http.Client, baseURL, sub string, rest []string) {
	switch sub {
	case "":
		getAndPrint(client, baseURL+"/brands")
	case "show":
		if len(rest) == 0 {
			log.Fatal("usage: gemdash brands show <name>")
		}
		getAndPrint(client, baseURL+"/brands/"+url.PathEscape(rest[0]))
	case "timeseries":
		if len(rest) == 0 {
			log.Fatal("usage: gemdash brands timeseries <name>")
		}
		getAndPrint(client, baseURL+"/brands/"+url.PathEscape(rest[0])+"/timeseries")
	default:
		printUsage()
		os.Exit(1)
	}
}

func getAndPrint(client *http.Client, u string) {
	resp, err := client.Get(u)
	if err != nil {
		log.Fatalf("request %s: %v", u, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("%s returned %d: %s", u, resp.StatusCode, body)
	}

	var pretty map[string]any
	if err := json.Unmarshal(body, &pretty); err != nil {
		fmt.Println(string(body))
		return
	}
	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(string(out))
}

func printUsage() {
	fmt.Println(`gemdash CLI

usage:
  gemdash [-api URL] overview
  gemdash [-api URL] products search [query]
  gemdash [-api URL] products show <name>
  gemdash [-api URL] comments [timeseries]
  gemdash [-api URL] questions
  gemdash [-api URL] brands
  gemdash [-api URL] brands show <name>
  gemdash [-api URL] brands timeseries <name>`)
}
