package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"eats-scraper/config"
	"eats-scraper/di"
	"eats-scraper/session"
	"eats-scraper/util"
)

func main() {
	var city, state, output, env string
	var chart, serve bool

	flag.StringVar(&city, "city", "", "City to scrape (required)")
	flag.StringVar(&city, "c", "", "City to scrape (shorthand)")
	flag.StringVar(&state, "state", "", "State or province to scrape (required)")
	flag.StringVar(&state, "s", "", "State or province to scrape (shorthand)")
	flag.StringVar(&output, "output", config.DEFAULT_OUTPUT_FILE, "Output file path")
	flag.StringVar(&output, "o", config.DEFAULT_OUTPUT_FILE, "Output file path (shorthand)")
	flag.StringVar(&env, "env", "prod", "Environment (prod uses the live API)")
	flag.BoolVar(&chart, "chart", false, "Render an HTML ratings chart")
	flag.BoolVar(&serve, "serve", false, "Serve cached results over HTTP after scraping")
	flag.Parse()

	if city == "" || state == "" {
		fmt.Println("Both --city and --state are required")
		flag.Usage()
		os.Exit(1)
	}

	// Optional .env file for local runs
	if err := godotenv.Load(); err == nil {
		log.Println("[Main] Loaded environment from .env")
	}

	creds, err := session.FromEnv()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		fmt.Println("Set the " + config.COOKIES_ENV_VAR + " environment variable to your Uber Eats session cookies:")
		fmt.Println("  1. Log in to ubereats.com in a browser")
		fmt.Println("  2. Copy the Cookie header from any request in the network inspector")
		fmt.Println("  3. export " + config.COOKIES_ENV_VAR + "='<cookie string>'")
		os.Exit(1)
	}

	container := di.NewContainer(env, creds, city, state)

	results, response, err := container.ScraperService.Scrape(city, state)
	if err != nil {
		fmt.Printf("Scrape failed: %v\n", err)
		os.Exit(1)
	}

	if len(results) == 0 {
		fmt.Println("No restaurants found in API response")
		if response != nil && len(response.Raw) > 0 {
			if err := util.WriteDebugResponse(config.DEBUG_RESPONSE_FILE, response.Raw); err != nil {
				log.Printf("[Main] Could not write debug response: %v", err)
			} else {
				fmt.Printf("Saved full response to %s\n", config.DEBUG_RESPONSE_FILE)
			}
		}
		return
	}

	fmt.Printf("Found %d restaurants\n", len(results))

	if err := util.WriteResultSet(output, results); err != nil {
		fmt.Printf("Could not write results: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Results written to %s\n", output)

	util.PrintResultSummary(results)

	if chart {
		util.PlotRatings(results, config.RATINGS_CHART_FILE)
	}

	if serve {
		container.FeedHttpServer.Start()
	}
}
