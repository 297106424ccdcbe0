package scanner

import (
	"reflect"
	"testing"
)

func TestScanRows(t *testing.T) {
	tests := []struct {
		name  string
		input string
		p     Params
		want  [][]string
	}{
		{
			name:  "simple rows",
			input: "a,b,c\n1,2,3\n",
			p:     DefaultParams(),
			want:  [][]string{{"a", "b", "c"}, {"1", "2", "3"}},
		},
		{
			name:  "missing trailing newline",
			input: "a,b\n1,2",
			p:     DefaultParams(),
			want:  [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:  "empty cells",
			input: "a,,c\n,,\n",
			p:     DefaultParams(),
			want:  [][]string{{"a", "", "c"}, {"", "", ""}},
		},
		{
			name:  "quotes preserved verbatim",
			input: "x,\"y,z\",w\n",
			p:     DefaultParams(),
			want:  [][]string{{"x", "\"y,z\"", "w"}},
		},
		{
			name:  "single quotes preserved verbatim",
			input: "x,'y,z',w\n",
			p:     DefaultParams(),
			want:  [][]string{{"x", "'y,z'", "w"}},
		},
		{
			name:  "quote mid-cell is literal",
			input: "ab\"c,d\n",
			p:     DefaultParams(),
			want:  [][]string{{"ab\"c", "d"}},
		},
		{
			name:  "quote re-opens when cell starts with same quote",
			input: "\"a\"b\"c,d\"\n",
			p:     DefaultParams(),
			want:  [][]string{{"\"a\"b\"c,d\""}},
		},
		{
			name:  "single quote inside double-quoted cell is literal",
			input: "\"it's,fine\",x\n",
			p:     DefaultParams(),
			want:  [][]string{{"\"it's,fine\"", "x"}},
		},
		{
			name:  "custom separator",
			input: "a;b;c\n",
			p:     Params{Separator: ';'},
			want:  [][]string{{"a", "b", "c"}},
		},
		{
			name:  "separator inside quotes with custom separator",
			input: "a;\"b;c\";d\n",
			p:     Params{Separator: ';'},
			want:  [][]string{{"a", "\"b;c\"", "d"}},
		},
		{
			name:  "CRLF terminators",
			input: "a,b\r\n1,2\r\n",
			p:     DefaultParams(),
			want:  [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:  "blank lines skipped",
			input: "a,b\n\n\n1,2\n",
			p:     DefaultParams(),
			want:  [][]string{{"a", "b"}, {"1", "2"}},
		},
		{
			name:  "line break ends quoted cell by default",
			input: "\"a\nb\",c\n",
			p:     DefaultParams(),
			want:  [][]string{{"\"a"}, {"b\"", "c"}},
		},
		{
			name:  "quoted linebreaks preserved when enabled",
			input: "\"a\nb\",c\n",
			p:     Params{Separator: ',', QuotedLinebreaks: true},
			want:  [][]string{{"\"a\nb\"", "c"}},
		},
		{
			name:  "quoted CRLF preserved when enabled",
			input: "\"a\r\nb\",c\r\n",
			p:     Params{Separator: ',', QuotedLinebreaks: true},
			want:  [][]string{{"\"a\r\nb\"", "c"}},
		},
		{
			name:  "trim cell whitespace",
			input: " a ,\tb\t, c\n",
			p:     Params{Separator: ',', Trim: true},
			want:  [][]string{{"a", "b", "c"}},
		},
		{
			name:  "empty input",
			input: "",
			p:     DefaultParams(),
			want:  [][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanString(tt.input, tt.p)
			if !reflect.DeepEqual(got.Rows, tt.want) {
				t.Errorf("ScanString(%q).Rows = %v, want %v", tt.input, got.Rows, tt.want)
			}
		})
	}
}

func TestScanLineTerminatorInference(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantHasCR bool
	}{
		{"LF only", "a,b\n1,2\n", false},
		{"CRLF throughout", "a,b\r\n1,2\r\n", true},
		{"mostly CRLF", "a\r\nb\r\nc\n", true},
		{"mostly LF", "a\nb\nc\r\n", false},
		{"no terminators", "a,b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanString(tt.input, DefaultParams())
			if got.HasCR() != tt.wantHasCR {
				t.Errorf("HasCR() = %v, want %v (cr=%d lf=%d)",
					got.HasCR(), tt.wantHasCR, got.CRCount, got.LFCount)
			}
		})
	}
}

func TestScanCounts(t *testing.T) {
	got := ScanString("a\r\nb\r\nc\n", DefaultParams())
	if got.CRCount != 2 {
		t.Errorf("CRCount = %d, want 2", got.CRCount)
	}
	if got.LFCount != 3 {
		t.Errorf("LFCount = %d, want 3", got.LFCount)
	}
}
