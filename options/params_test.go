package options

import (
	"testing"
)

func TestParams_Get(t *testing.T) {
	p := NewParams(map[string]string{
		"DBTable":   "logs",
		"fetchSize": "100",
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		for _, key := range []string{"dbtable", "DBTABLE", "DbTable"} {
			v, ok := p.Get(key)
			if !ok {
				t.Fatalf("Get(%q) not found", key)
			}
			if v != "logs" {
				t.Errorf("Get(%q) = %q, want %q", key, v, "logs")
			}
		}
	})

	t.Run("missing key", func(t *testing.T) {
		if _, ok := p.Get("region"); ok {
			t.Error("Get(region) found, want missing")
		}
	})

	t.Run("pairs keep original casing", func(t *testing.T) {
		pairs := p.Pairs()
		if len(pairs) != 2 {
			t.Fatalf("len(Pairs()) = %d, want 2", len(pairs))
		}
		if pairs[0].Key != "DBTable" || pairs[1].Key != "fetchSize" {
			t.Errorf("Pairs() keys = %q, %q; want original casing in sorted order", pairs[0].Key, pairs[1].Key)
		}
	})
}

func TestParamsFromPairs(t *testing.T) {
	t.Run("preserves caller order", func(t *testing.T) {
		p := ParamsFromPairs([]Property{
			{Key: "zeta", Value: "1"},
			{Key: "alpha", Value: "2"},
		})
		pairs := p.Pairs()
		if pairs[0].Key != "zeta" || pairs[1].Key != "alpha" {
			t.Errorf("Pairs() = %v, want caller order", pairs)
		}
	})

	t.Run("later duplicate wins, keeps first position", func(t *testing.T) {
		p := ParamsFromPairs([]Property{
			{Key: "Region", Value: "us-east-1"},
			{Key: "dbtable", Value: "t"},
			{Key: "region", Value: "us-west-2"},
		})
		if p.Len() != 2 {
			t.Fatalf("Len() = %d, want 2", p.Len())
		}
		v, _ := p.Get("REGION")
		if v != "us-west-2" {
			t.Errorf("Get(REGION) = %q, want %q", v, "us-west-2")
		}
		if p.Pairs()[0].Key != "region" {
			t.Errorf("first pair key = %q, want %q", p.Pairs()[0].Key, "region")
		}
	})
}

func TestParamsWithTable(t *testing.T) {
	t.Run("explicit arguments override map entries", func(t *testing.T) {
		p := ParamsWithTable("jdbc:awsathena://athena.us-east-1.amazonaws.com:443", "events", map[string]string{
			"URL":     "jdbc:awsathena://athena.eu-west-1.amazonaws.com:443",
			"DBTABLE": "old",
			"region":  "us-east-1",
		})
		if p.Len() != 3 {
			t.Fatalf("Len() = %d, want 3", p.Len())
		}
		url, _ := p.Get("url")
		if url != "jdbc:awsathena://athena.us-east-1.amazonaws.com:443" {
			t.Errorf("url = %q, want the explicit argument", url)
		}
		table, _ := p.Get("dbtable")
		if table != "events" {
			t.Errorf("dbtable = %q, want %q", table, "events")
		}
	})

	t.Run("empty arguments leave map entries untouched", func(t *testing.T) {
		p := ParamsWithTable("", "events", map[string]string{"url": "keep"})
		url, _ := p.Get("url")
		if url != "keep" {
			t.Errorf("url = %q, want %q", url, "keep")
		}
	})

	t.Run("immutable: pairs copy does not alias the store", func(t *testing.T) {
		p := NewParams(map[string]string{"dbtable": "t"})
		pairs := p.Pairs()
		pairs[0].Value = "mutated"
		v, _ := p.Get("dbtable")
		if v != "t" {
			t.Errorf("Get(dbtable) = %q after mutating a copy, want %q", v, "t")
		}
	})
}
