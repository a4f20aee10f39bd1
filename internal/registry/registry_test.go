package registry

import (
	"testing"

	"github.com/gwflow-labs/gwflow/internal/model"
	"github.com/gwflow-labs/gwflow/internal/namefile"
)

func TestNew_CopiesInput(t *testing.T) {
	caps := map[string]Capability{"DIS": {PeekHeader: true}}
	r := New(caps)

	// Mutating the source map after construction must not leak in.
	caps["WEL"] = Capability{}
	delete(caps, "DIS")

	if _, ok := r.Get("DIS"); !ok {
		t.Error("Get(DIS) lost after source map mutation")
	}
	if _, ok := r.Get("WEL"); ok {
		t.Error("Get(WEL) observed a post-construction mutation")
	}
}

func TestGet_CaseInsensitive(t *testing.T) {
	r := New(map[string]Capability{"bas6": {PeekHeader: true}})
	for _, tag := range []string{"bas6", "BAS6", "Bas6"} {
		if _, ok := r.Get(tag); !ok {
			t.Errorf("Get(%q) = not found", tag)
		}
	}
}

func TestLoadable(t *testing.T) {
	r := New(map[string]Capability{
		"DIS":  {Loader: stubLoader{}},
		"DATA": {},
	})
	if !r.Loadable("DIS") {
		t.Error("Loadable(DIS) = false, want true")
	}
	if r.Loadable("DATA") {
		t.Error("Loadable(DATA) = true for a capability with no loader")
	}
	if r.Loadable("WEL") {
		t.Error("Loadable(WEL) = true for an unregistered tag")
	}
}

func TestPeekTypes(t *testing.T) {
	r := New(map[string]Capability{
		"BAS6": {PeekHeader: true},
		"DIS":  {},
	})
	peek := r.PeekTypes()
	if !peek["BAS6"] {
		t.Error("PeekTypes() missing BAS6")
	}
	if peek["DIS"] {
		t.Error("PeekTypes() includes DIS, which does not peek")
	}
}

func TestDetectVersion(t *testing.T) {
	tests := []struct {
		name           string
		tags           []string
		wantVersion    string
		wantStructured bool
	}{
		{"plain", []string{"DIS", "BAS6", "WEL"}, model.VersionMF2005, true},
		{"nwt solver", []string{"DIS", "BAS6", "NWT"}, model.VersionMFNWT, true},
		{"upw flow", []string{"DIS", "UPW"}, model.VersionMFNWT, true},
		{"global listing", []string{"GLOBAL", "DIS"}, model.VersionMF2K, true},
		{"sms solver", []string{"DIS", "SMS"}, model.VersionMFUSG, true},
		{"unstructured", []string{"DISU", "BAS6"}, model.VersionMFUSG, false},
		{"last wins", []string{"GLOBAL", "NWT"}, model.VersionMFNWT, true},
	}
	r := New(map[string]Capability{
		"DIS":  {Loader: stubLoader{}},
		"DISU": {Loader: stubLoader{}, Version: model.VersionMFUSG, Unstructured: true},
		"BAS6": {Loader: stubLoader{}},
		"WEL":  {Loader: stubLoader{}},
		"NWT":  {Loader: stubLoader{}, Version: model.VersionMFNWT},
		"UPW":  {Loader: stubLoader{}, Version: model.VersionMFNWT},
		"SMS":  {Loader: stubLoader{}, Version: model.VersionMFUSG},
	})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]*namefile.Entry, len(tt.tags))
			for i, tag := range tt.tags {
				entries[i] = &namefile.Entry{Unit: 10 + i, FileType: tag, FileName: "x"}
			}
			version, structured := r.DetectVersion(entries, model.DefaultVersion)
			if version != tt.wantVersion {
				t.Errorf("version = %q, want %q", version, tt.wantVersion)
			}
			if structured != tt.wantStructured {
				t.Errorf("structured = %v, want %v", structured, tt.wantStructured)
			}
		})
	}
}

func TestDetectVersion_KeepsFallback(t *testing.T) {
	r := New(nil)
	version, _ := r.DetectVersion(nil, "mfnwt")
	if version != "mfnwt" {
		t.Errorf("version = %q, want fallback mfnwt", version)
	}
	version, _ = r.DetectVersion(nil, "")
	if version != model.DefaultVersion {
		t.Errorf("version = %q, want default %q", version, model.DefaultVersion)
	}
}

func TestContext_Resolve(t *testing.T) {
	c := &Context{Dir: "/ws"}
	if got := c.Resolve("a.dis"); got != "/ws/a.dis" {
		t.Errorf("Resolve relative = %q", got)
	}
	if got := c.Resolve("/abs/a.dis"); got != "/abs/a.dis" {
		t.Errorf("Resolve absolute = %q", got)
	}
}

type stubLoader struct{}

func (stubLoader) Load(path string, m *model.Model, ctx *Context) (model.Package, error) {
	return nil, nil
}
