package log

import (
	"encoding/json"
	"math"
	"math/big"
	"math/rand"
	"strings"
	"testing"
	"time"
)

func TestPrettyInt64(t *testing.T) {
	tests := []struct {
		n int64
		s string
	}{
		{0, "0"},
		{10, "10"},
		{-10, "-10"},
		{99999, "99999"},
		{-99999, "-99999"},
		{100000, "100,000"},
		{-100000, "-100,000"},
		{1000000, "1,000,000"},
		{-1000000, "-1,000,000"},
		{math.MaxInt64, "9,223,372,036,854,775,807"},
		{math.MinInt64, "-9,223,372,036,854,775,808"},
	}
	for i, tt := range tests {
		if have := FormatLogfmtInt64(tt.n); have != tt.s {
			t.Errorf("test %d: format mismatch: have %s, want %s", i, have, tt.s)
		}
	}
}

func TestPrettyUint64(t *testing.T) {
	tests := []struct {
		n uint64
		s string
	}{
		{0, "0"},
		{1000, "1000"},
		{99999, "99999"},
		{100000, "100,000"},
		{4370000, "4,370,000"},
		{math.MaxUint64, "18,446,744,073,709,551,615"},
	}
	for i, tt := range tests {
		if have := FormatLogfmtUint64(tt.n); have != tt.s {
			t.Errorf("test %d: format mismatch: have %s, want %s", i, have, tt.s)
		}
	}
}

func TestPrettyBigInt(t *testing.T) {
	tests := []struct {
		int string
		s   string
	}{
		{"111222333444555678999", "111,222,333,444,555,678,999"},
		{"-111222333444555678999", "-111,222,333,444,555,678,999"},
		{"11122233344455567899900", "11,122,233,344,455,567,899,900"},
	}

	for _, tt := range tests {
		v, _ := new(big.Int).SetString(tt.int, 10)
		if have := formatLogfmtBigInt(v); have != tt.s {
			t.Errorf("invalid output %s, want %s", have, tt.s)
		}
	}
}

var sink string

func BenchmarkPrettyUint64Logfmt(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = FormatLogfmtUint64(rand.Uint64())
	}
}

func testRecord(msg string, ctx ...interface{}) *Record {
	return &Record{
		Time: time.Date(2020, time.January, 1, 1, 0, 0, 0, time.UTC),
		Lvl:  LvlWarn,
		Msg:  msg,
		Ctx:  ctx,
		KeyNames: RecordKeyNames{
			Time: timeKey,
			Msg:  msgKey,
			Lvl:  lvlKey,
			Ctx:  ctxKey,
		},
	}
}

func TestTerminalFormat(t *testing.T) {
	r := testRecord("Builtin missing activation block", "builtin", "ecrecover")
	have := string(TerminalFormat(false).Format(r))
	want := "WARN [01-01|01:00:00.000] Builtin missing activation block         builtin=ecrecover\n"
	if have != want {
		t.Errorf("\nhave: %q\nwant: %q", have, want)
	}
	colored := string(TerminalFormat(true).Format(r))
	if !strings.HasPrefix(colored, "\x1b[33mWARN \x1b[0m") {
		t.Errorf("warning not coloured yellow: %q", colored)
	}
}

func TestLogfmtFormatQuotes(t *testing.T) {
	r := testRecord("hello", "info", "EIP1108 transition", "height", uint64(1561651))
	have := string(LogfmtFormat().Format(r))
	if !strings.Contains(have, `info="EIP1108 transition"`) {
		t.Errorf("value with spaces not quoted: %s", have)
	}
	if !strings.Contains(have, "height=1,561,651") {
		t.Errorf("large integer not grouped: %s", have)
	}
}

func TestJSONFormat(t *testing.T) {
	r := testRecord("hello", "builtin", "alt_bn128_add", 42, "bad key")
	var props map[string]interface{}
	if err := json.Unmarshal(JSONFormat().Format(r), &props); err != nil {
		t.Fatal(err)
	}
	if props["msg"] != "hello" || props["lvl"] != "warn" || props["builtin"] != "alt_bn128_add" {
		t.Errorf("unexpected properties: %v", props)
	}
	if _, ok := props[errorKey]; !ok {
		t.Errorf("non-string key not reported: %v", props)
	}
}
