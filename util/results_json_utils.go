package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"sort"

	"eats-scraper/models"
)

// WriteResultSet writes the scraped results to disk as indented JSON.
// HTML escaping is off so store URLs keep their ampersands readable.
func WriteResultSet(filePath string, results models.ResultSet) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file %q: %w", filePath, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}

// ReadResultSetFromJSON loads a previously written result set from disk.
func ReadResultSetFromJSON(filePath string) (models.ResultSet, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var results models.ResultSet
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal results: %w", err)
	}
	return results, nil
}

// ReadFeedResponseFromJSON loads a FeedResponse from JSON on disk.
func ReadFeedResponseFromJSON(filePath string) (*models.FeedResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.FeedResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal FeedResponse: %w", err)
	}
	return &resp, nil
}

// WriteDebugResponse dumps the raw API body to disk, pretty-printed when
// it is valid JSON and verbatim otherwise.
func WriteDebugResponse(filePath string, raw []byte) error {
	var pretty bytes.Buffer
	out := raw
	if err := json.Indent(&pretty, raw, "", "  "); err == nil {
		out = pretty.Bytes()
	}
	if err := ioutil.WriteFile(filePath, out, 0644); err != nil {
		return fmt.Errorf("failed to write debug response %q: %w", filePath, err)
	}
	return nil
}

// PrintResultSummary prints a name-to-rating preview of up to ten
// entries, in name order, with a count of the remainder.
func PrintResultSummary(results models.ResultSet) {
	fmt.Println("Sample results:")

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	const previewSize = 10
	for i, name := range names {
		if i == previewSize {
			fmt.Printf("... and %d more\n", len(names)-previewSize)
			break
		}
		rating := models.NotAvailable
		if records := results[name]; len(records) > 0 {
			rating = records[0].Rating
		}
		fmt.Printf("  %s: Rating %s\n", name, rating)
	}
}
