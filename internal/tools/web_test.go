package tools

import (
	"context"
	"net/url"
	"strings"
	"testing"
)

func TestWebFetchRejectsBadURLs(t *testing.T) {
	tool := NewWebFetchTool()
	ctx := context.Background()

	tests := []struct {
		name    string
		args    map[string]interface{}
		wantErr string
	}{
		{
			name:    "missing url",
			args:    map[string]interface{}{},
			wantErr: "url argument required",
		},
		{
			name:    "unsupported scheme",
			args:    map[string]interface{}{"url": "ftp://example.com/file"},
			wantErr: "only http/https",
		},
		{
			name:    "localhost blocked",
			args:    map[string]interface{}{"url": "http://localhost:8080/admin"},
			wantErr: "blocked",
		},
		{
			name:    "private range blocked",
			args:    map[string]interface{}{"url": "http://192.168.1.5/"},
			wantErr: "blocked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tool.Execute(ctx, tt.args)
			if res.Success {
				t.Fatalf("Execute() succeeded, want failure containing %q", tt.wantErr)
			}
			if !strings.Contains(res.Error, tt.wantErr) {
				t.Errorf("Error = %q, want it to contain %q", res.Error, tt.wantErr)
			}
		})
	}
}

func TestExtractReadableFallback(t *testing.T) {
	html := `<html><head><title>Quarterly Report</title><style>p{color:red}</style></head>
<body><script>var x = 1;</script><p>Revenue grew 12% quarter over quarter.</p></body></html>`

	pageURL, _ := url.Parse("https://example.com/report")
	title, content := extractReadable(html, pageURL)

	if title != "Quarterly Report" {
		t.Errorf("title = %q, want %q", title, "Quarterly Report")
	}
	if !strings.Contains(content, "Revenue grew 12%") {
		t.Errorf("content missing article text, got %q", content)
	}
	if strings.Contains(content, "var x") {
		t.Errorf("content contains script text: %q", content)
	}
}
