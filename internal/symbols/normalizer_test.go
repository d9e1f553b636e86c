package symbols

import "testing"

func TestNormalize_Aliases(t *testing.T) {
	cases := map[string]string{
		"tcs":                      "TCS.NS",
		"Tata Consultancy":         "TCS.NS",
		"tata consultancy services": "TCS.NS",
		"l&t":                      "LT.NS",
		"Larsen & Toubro":          "LT.NS",
		"hdfc bank":                "HDFCBANK.NS",
		"  state bank of india  ":  "SBIN.NS",
		"HUL":                      "HINDUNILVR.NS",
		"m&m":                      "M&M.NS",
	}
	for input, want := range cases {
		if got := Normalize(input); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalize_SuffixedPassthrough(t *testing.T) {
	cases := map[string]string{
		"TCS.NS":   "TCS.NS",
		"tcs.ns":   "TCS.NS",
		"AAPL.US":  "AAPL.US",
		"BHP.AX":   "BHP.AX",
		"XYZ.BO":   "XYZ.BO", // unknown but suffixed: left alone
	}
	for input, want := range cases {
		if got := Normalize(input); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalize_KnownTickerGetsSuffix(t *testing.T) {
	cases := map[string]string{
		"ntpc":  "NTPC.NS",
		"ONGC":  "ONGC.NS",
		"irctc": "IRCTC.NS",
	}
	for input, want := range cases {
		if got := Normalize(input); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalize_UnknownPassthrough(t *testing.T) {
	// Unknown tickers are assumed already canonical (e.g. foreign listings).
	if got := Normalize("aapl"); got != "AAPL" {
		t.Errorf("Normalize(aapl) = %q, want AAPL", got)
	}
}

func TestNormalize_Totality(t *testing.T) {
	// Must never panic and must return empty only for blank input.
	inputs := []string{"", "   ", "\t\n", "!!!", "&&&", "....", "123", "a b c d e"}
	for _, in := range inputs {
		got := Normalize(in) // must not panic
		_ = got
	}

	if Normalize("") != "" {
		t.Error("Normalize of empty string must be empty")
	}
	if Normalize("   ") != "" {
		t.Error("Normalize of whitespace must be empty")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"tcs", "TCS.NS", "infosys", "l&t", "aapl", "AAPL.US",
		"", "   ", "reliance industries", "ntpc", "нет", "!!!", "m&m",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("TCS.NS"); got != "Tata Consultancy Services" {
		t.Errorf("DisplayName(TCS.NS) = %q", got)
	}
	// Unknown symbols fall back to the bare ticker.
	if got := DisplayName("UNLISTED.NS"); got != "UNLISTED" {
		t.Errorf("DisplayName(UNLISTED.NS) = %q, want UNLISTED", got)
	}
	if got := DisplayName("AAPL"); got != "AAPL" {
		t.Errorf("DisplayName(AAPL) = %q, want AAPL", got)
	}
}

func TestLooseKey(t *testing.T) {
	cases := map[string]string{
		"L&T":              "L T",
		"  hdfc-bank  ":    "HDFC BANK",
		"Tata  Consultancy": "TATA CONSULTANCY",
		"!!!":              "",
	}
	for input, want := range cases {
		if got := looseKey(input); got != want {
			t.Errorf("looseKey(%q) = %q, want %q", input, got, want)
		}
	}
}
