package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const articleHTML = `
<!DOCTYPE html>
<html>
<head>
	<title>Test Article</title>
</head>
<body>
	<header>
		<h1>Site Header</h1>
		<nav>Navigation</nav>
	</header>
	<main>
		<article>
			<h1>Main Article Title</h1>
			<p>This is the main content of the article. It contains several paragraphs of meaningful text that should be extracted by the readability algorithm.</p>
			<p>This is another paragraph with more content. The readability algorithm should identify this as the main content area and extract it properly.</p>
			<p>Here is some more substantial content to ensure we meet the character threshold. This paragraph adds more context and information that would be valuable to readers.</p>
		</article>
	</main>
	<aside>
		<div>Advertisement</div>
	</aside>
	<footer>
		<p>Copyright 2024</p>
	</footer>
</body>
</html>
`

func TestContentExtractorRun(t *testing.T) {
	extractor := NewContentExtractor(nil)

	article, err := extractor.Run([]byte(articleHTML), "https://example.com/post")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if article.Text == "" {
		t.Fatal("Expected non-empty article text")
	}
	if !strings.Contains(article.Text, "main content of the article") {
		t.Error("Expected extracted text to contain main article content")
	}
	if strings.Contains(article.Text, "Copyright 2024") {
		t.Error("Expected extracted text to exclude footer")
	}
	if strings.Contains(article.Text, "<p>") {
		t.Error("Expected plain text without HTML tags")
	}
}

func TestContentExtractorRunEmptyData(t *testing.T) {
	extractor := NewContentExtractor(nil)

	for _, data := range [][]byte{nil, {}} {
		article, err := extractor.Run(data, "https://example.com/post")
		if err == nil {
			t.Error("Expected error for empty data")
		}
		if err != nil && err.Error() != "HTML data is empty" {
			t.Errorf("Expected 'HTML data is empty' error, got: %v", err)
		}
		if article.Text != "" {
			t.Errorf("Expected empty article on error, got: %q", article.Text)
		}
	}
}

func TestContentExtractorRunScriptRemoval(t *testing.T) {
	extractor := NewContentExtractor(nil)

	htmlContent := `
	<!DOCTYPE html>
	<html>
	<head><title>Article with Scripts</title></head>
	<body>
		<script>console.log("This script should be removed");</script>
		<article>
			<h1>Clean Article Content</h1>
			<p>This is the main content that should be extracted without any scripts interfering. The article contains substantial text content that meets the readability algorithm's requirements.</p>
			<p>The content extraction should focus on the meaningful text and ignore technical elements. This paragraph provides additional context and information for readers.</p>
			<p>Here is more substantial content to ensure we meet the character threshold. This article discusses important topics and provides valuable information to readers.</p>
		</article>
	</body>
	</html>
	`

	article, err := extractor.Run([]byte(htmlContent), "https://example.com/post")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.Contains(article.Text, "main content that should be extracted") {
		t.Error("Expected extracted text to contain main article content")
	}
	if strings.Contains(article.Text, "console.log") {
		t.Error("Expected extracted text to exclude script content")
	}
}

func TestContentExtractorExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	client := NewClient(server.Client(), "test-agent/1.0", 5)
	extractor := NewContentExtractor(client)

	article, err := extractor.Extract(context.Background(), server.URL+"/post")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.Contains(article.Text, "main content of the article") {
		t.Error("Expected extracted text to contain main article content")
	}
}

func TestContentExtractorExtractFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.Client(), "test-agent/1.0", 5)
	extractor := NewContentExtractor(client)

	if _, err := extractor.Extract(context.Background(), server.URL+"/missing"); err == nil {
		t.Error("Expected error for failing page fetch")
	}
}
