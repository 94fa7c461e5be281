package ingestion

import (
	"context"
	"fmt"

	"github.com/careersight/careersight/internal/fetch"
	"github.com/careersight/careersight/internal/llm"
	"github.com/careersight/careersight/internal/logger"
	"github.com/careersight/careersight/internal/types"
)

var (
	// ErrHTTPRequestFailed is returned when the page could not be fetched.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when no text could be pulled
	// out of the page.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// URLOptions configures posting ingestion from a URL.
type URLOptions struct {
	// Fetcher, when set, is used instead of a direct HTTP fetch so pages
	// can be served from the disk cache.
	Fetcher *fetch.CachedFetcher
	// UseBrowser enables the headless browser fallback for pages that
	// render their content client-side.
	UseBrowser bool
	// Client, when set, is used to extract structured posting fields from
	// the page text. Without it only the title and description are filled.
	Client llm.Client
}

// FromURL fetches a posting page, extracts and cleans its text, and builds a
// raw posting record from it. JobID is left zero; callers assign batch IDs.
func FromURL(ctx context.Context, urlStr string, opts URLOptions) (*types.RawPosting, *Metadata, error) {
	platform := fetch.DetectPlatform(urlStr)
	logger.Debug().Str("url", urlStr).Str("platform", string(platform)).Msg("ingesting posting from URL")

	html, fromCache, err := fetchHTML(ctx, urlStr, opts.Fetcher)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	textContent, err := fetch.ExtractMainText(html, contentSelectors, noiseSelectors...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	if opts.UseBrowser && fetch.ShouldUseBrowser(textContent) {
		browserHTML, browserErr := fetch.BrowserSimple(ctx, urlStr)
		if browserErr != nil {
			logger.Warn().Err(browserErr).Str("url", urlStr).Msg("browser rendering failed, using HTTP content")
		} else if rendered, extractErr := fetch.ExtractMainText(browserHTML, contentSelectors, noiseSelectors...); extractErr == nil {
			html = browserHTML
			textContent = rendered
		}
	}

	cleanedText := CleanText(textContent)
	if cleanedText == "" {
		return nil, nil, fmt.Errorf("%w: page yielded no text", ErrContentExtractionFailed)
	}

	metadata := NewMetadata(cleanedText, urlStr)
	metadata.Platform = string(platform)
	metadata.FromCache = fromCache

	posting := &types.RawPosting{
		JobTitle:    fetch.ExtractTitle(html),
		Description: cleanedText,
	}

	if opts.Client != nil {
		extracted, err := ExtractWithModel(ctx, opts.Client, cleanedText)
		if err != nil {
			logger.Warn().Err(err).Str("url", urlStr).Msg("model extraction failed, keeping page text only")
		} else {
			applyExtracted(posting, extracted)
		}
	}

	return posting, metadata, nil
}

func fetchHTML(ctx context.Context, urlStr string, fetcher *fetch.CachedFetcher) (string, bool, error) {
	if fetcher != nil {
		result, err := fetcher.Fetch(ctx, urlStr)
		if err != nil {
			return "", false, err
		}
		return result.HTML, result.FromCache, nil
	}

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", false, err
	}
	return result.HTML, false, nil
}

// applyExtracted fills posting fields from the model extraction, keeping the
// page-derived value wherever the model returned nothing.
func applyExtracted(posting *types.RawPosting, extracted *ExtractedPosting) {
	if extracted.Title != "" {
		posting.JobTitle = extracted.Title
	}
	posting.Company = extracted.Company
	posting.Location = extracted.Location
	posting.Category = extracted.Category
	posting.Salary = extracted.Salary
	posting.Experience = extracted.Experience
	posting.Skills = extracted.Skills
	if extracted.Summary != "" {
		posting.Description = extracted.Summary + "\n\n" + posting.Description
	}
}
