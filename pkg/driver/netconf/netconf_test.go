package netconf

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
)

func TestStampReplace(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		want    []string
		wantErr bool
	}{
		{
			name:   "single subtree",
			config: "<interfaces><interface><name>eth0</name></interface></interfaces>",
			want:   []string{`nc:operation="replace"`, "<interfaces"},
		},
		{
			name:   "multiple subtrees each stamped",
			config: "<interfaces/><system/>",
			want:   []string{`<interfaces xmlns:nc="urn:ietf:params:xml:ns:netconf:base:1.0" nc:operation="replace"/>`, `<system xmlns:nc="urn:ietf:params:xml:ns:netconf:base:1.0" nc:operation="replace"/>`},
		},
		{
			name:    "not xml",
			config:  "interface eth0 <<<",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StampReplace(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("StampReplace() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("StampReplace() = %q, missing %q", got, w)
				}
			}
		})
	}
}

func TestFilterRPCErrors(t *testing.T) {
	reply := `<rpc-reply>
  <rpc-error>
    <error-severity>error</error-severity>
    <error-message>syntax error</error-message>
  </rpc-error>
  <rpc-error>
    <error-severity>warning</error-severity>
    <error-message>deprecated leaf</error-message>
  </rpc-error>
</rpc-reply>`
	x := etree.NewDocument()
	if err := x.ReadFromString(reply); err != nil {
		t.Fatalf("reading reply: %v", err)
	}

	errs, err := FilterRPCErrors(x, "error")
	if err != nil {
		t.Fatalf("FilterRPCErrors() = %v", err)
	}
	if len(errs) != 1 {
		t.Fatalf("FilterRPCErrors() returned %d errors, want 1", len(errs))
	}
	if !strings.Contains(errs[0], "syntax error") {
		t.Errorf("FilterRPCErrors() = %q, missing the error message", errs[0])
	}

	warns, err := FilterRPCErrors(x, "warning")
	if err != nil {
		t.Fatalf("FilterRPCErrors() = %v", err)
	}
	if len(warns) != 1 || !strings.Contains(warns[0], "deprecated leaf") {
		t.Errorf("FilterRPCErrors(warning) = %v, want the warning entry", warns)
	}
}
