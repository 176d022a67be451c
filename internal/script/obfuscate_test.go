package script

import (
	"regexp"
	"strings"
	"testing"
)

const sampleScript = `
(function() {
  'use strict';

  const cookieA = {
    name: 'aff_token',
    value: 'checkReferrer',
    domain: '.casino.example',
    expiry: new Date('2025-01-01T00:00:00Z')
  };

  const referrerRegex = /ref\d+/i;

  // dropped by the whitespace pass
  function checkReferrer() {
    try {
      return referrerRegex.test(document.referrer || '');
    } catch (e) {
      return false;
    }
  }

  function executeScript() {
    if (!checkReferrer()) {
      return;
    }
    fetch('https://track.example/events/track', {
      body: JSON.stringify({
        referrer: document.referrer,
        cookieData: { cookieA: cookieA.value }
      })
    });
  }

  executeScript();
})();
`

// TestObfuscateRenamesIdentifiers verifies reserved identifiers disappear
// from code regions while their aliases stay consistent.
func TestObfuscateRenamesIdentifiers(t *testing.T) {
	out := Obfuscate(sampleScript)

	for _, ident := range []string{"checkReferrer()", "executeScript()", "const cookieA"} {
		if strings.Contains(out, ident) {
			t.Errorf("identifier %q survived obfuscation:\n%s", ident, out)
		}
	}
	// A declared function must be invoked under the same alias.
	fnRe := regexp.MustCompile(`function (fn_[0-9a-f]{16})\(\)`)
	names := fnRe.FindAllStringSubmatch(out, -1)
	if len(names) != 2 {
		t.Fatalf("expected 2 aliased functions, got %d:\n%s", len(names), out)
	}
	for _, m := range names {
		if strings.Count(out, m[1]) < 2 {
			t.Errorf("alias %s declared but never called", m[1])
		}
	}
}

// TestObfuscatePreservesLiterals verifies string and regex literals pass
// through untouched, even when a value equals a reserved identifier name.
func TestObfuscatePreservesLiterals(t *testing.T) {
	out := Obfuscate(sampleScript)

	for _, lit := range []string{"'checkReferrer'", "'.casino.example'", `/ref\d+/i`, "'https://track.example/events/track'"} {
		if !strings.Contains(out, lit) {
			t.Errorf("literal %s damaged by obfuscation:\n%s", lit, out)
		}
	}
}

// TestObfuscateKeepsPropertyAndKeyNames verifies DOM reads and JSON keys
// keep their names; renaming them would change runtime behavior and the
// wire format.
func TestObfuscateKeepsPropertyAndKeyNames(t *testing.T) {
	out := Obfuscate(sampleScript)

	for _, want := range []string{".referrer", "referrer:", "cookieA:", "domain:", "expiry:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q to survive obfuscation:\n%s", want, out)
		}
	}
}

// TestObfuscateSingleLine verifies the whitespace pass folds the script
// onto one line without a line comment swallowing the tail.
func TestObfuscateSingleLine(t *testing.T) {
	out := Obfuscate(sampleScript)

	if strings.Contains(out, "\n") {
		t.Errorf("expected single-line output:\n%q", out)
	}
	if strings.Contains(out, "dropped by the whitespace pass") {
		t.Errorf("line comment survived into single-line output:\n%s", out)
	}
	if !strings.HasSuffix(out, "})();") {
		t.Errorf("script tail lost: %q", out[max(0, len(out)-40):])
	}
}

// TestObfuscateFreshAliases verifies the renaming table is created per
// call: two renders of the same input must not share aliases.
func TestObfuscateFreshAliases(t *testing.T) {
	fnRe := regexp.MustCompile(`fn_[0-9a-f]{16}`)

	a := fnRe.FindAllString(Obfuscate(sampleScript), -1)
	b := fnRe.FindAllString(Obfuscate(sampleScript), -1)
	if len(a) == 0 || len(b) == 0 {
		t.Fatal("no aliases produced")
	}
	seen := make(map[string]bool, len(a))
	for _, n := range a {
		seen[n] = true
	}
	for _, n := range b {
		if seen[n] {
			t.Errorf("alias %s reused across calls", n)
		}
	}
}

func TestScanSegments(t *testing.T) {
	segs := scan(`var x = 'a/b'; // tail` + "\n" + `var r = /a'b/g; /* block */ done`)

	var kinds []segKind
	for _, s := range segs {
		kinds = append(kinds, s.kind)
	}
	want := []segKind{segCode, segString, segCode, segLineComment, segCode, segRegex, segCode, segBlockComment, segCode}
	if len(kinds) != len(want) {
		t.Fatalf("segment kinds %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("segment %d kind %v, want %v", i, kinds[i], want[i])
		}
	}
	if segs[5].text != `/a'b/g` {
		t.Errorf("regex segment %q", segs[5].text)
	}
}
