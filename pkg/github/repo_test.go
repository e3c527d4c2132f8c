package github

import "testing"

func TestParseRepo(t *testing.T) {
	tests := []struct {
		ref     string
		want    Repo
		wantErr bool
	}{
		{ref: "acme/widget", want: Repo{Owner: "acme", Name: "widget"}},
		{ref: "Acme-Corp/widget.js", want: Repo{Owner: "Acme-Corp", Name: "widget.js"}},
		{ref: "acme/my_repo-2", want: Repo{Owner: "acme", Name: "my_repo-2"}},
		{ref: "widget", wantErr: true},
		{ref: "", wantErr: true},
		{ref: "/widget", wantErr: true},
		{ref: "acme/", wantErr: true},
		{ref: "-acme/widget", wantErr: true},
		{ref: "acme/widget/extra", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := ParseRepo(tt.ref)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRepo(%q) = %v, want error", tt.ref, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRepo(%q) = %v", tt.ref, err)
			}
			if got != tt.want {
				t.Errorf("ParseRepo(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestRepoString(t *testing.T) {
	r := Repo{Owner: "acme", Name: "widget"}
	if r.String() != "acme/widget" {
		t.Errorf("String() = %s", r.String())
	}
}
