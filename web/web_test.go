package web

import (
	"io/fs"
	"strings"
	"testing"
)

func TestStatic_ContainsPages(t *testing.T) {
	site := Static()
	for _, name := range []string{
		"index.html", "home.html", "about.html", "services.html",
		"contact.html", "login.html", "register.html",
		"style.css", "script.js",
	} {
		if _, err := fs.Stat(site, name); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestStatic_PagesLoadScript(t *testing.T) {
	site := Static()
	pages, err := fs.Glob(site, "*.html")
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range pages {
		b, err := fs.ReadFile(site, p)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(b), `src="/assets/script.js"`) {
			t.Errorf("%s does not load /assets/script.js", p)
		}
	}
}

func TestScript_UsesRelativeAPI(t *testing.T) {
	b, err := fs.ReadFile(Static(), "script.js")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "localhost") {
		t.Error("script.js must call the API on the serving origin")
	}
	for _, path := range []string{"/api/dogs", "/api/users/register", "/login", "/contact", "/api/dogs/upload"} {
		if !strings.Contains(string(b), `"`+path+`"`) {
			t.Errorf("script.js does not call %s", path)
		}
	}
}
