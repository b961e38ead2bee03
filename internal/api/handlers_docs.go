package api

import (
	"bytes"
	"errors"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/net/html"

	"github.com/dgallion1/mdtoc/internal/parser"
	"github.com/dgallion1/mdtoc/internal/toc"
)

// handleDocument renders one markdown document as an HTML page. Relative
// links to other markdown documents are rewritten to their /docs/ URL so the
// injected TOC can be navigated in a browser.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	docPath := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	if docPath == "" || !fs.ValidPath(docPath) || !parser.HasExtension(docPath, s.cfg.Extensions) {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}

	src, err := fs.ReadFile(s.docs, docPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			jsonError(w, "document not found", http.StatusNotFound)
			return
		}
		s.log.Error("read document", "path", docPath, "error", err)
		jsonError(w, "failed to read document", http.StatusInternalServerError)
		return
	}

	body, err := s.md.RenderHTML(parser.StripFrontMatter(src))
	if err != nil {
		s.log.Error("render document", "path", docPath, "error", err)
		jsonError(w, "failed to render document", http.StatusInternalServerError)
		return
	}

	page, err := previewPage(docPath, body, s.cfg.Extensions)
	if err != nil {
		s.log.Error("rewrite links", "path", docPath, "error", err)
		jsonError(w, "failed to render document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// previewPage wraps a rendered fragment in a page and rewrites its links.
func previewPage(docPath string, fragment []byte, exts []string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\"><title>")
	buf.WriteString(html.EscapeString(toc.Title(docPath)))
	buf.WriteString("</title></head><body>")
	buf.Write(fragment)
	buf.WriteString("</body></html>")

	doc, err := html.Parse(&buf)
	if err != nil {
		return nil, err
	}
	rewriteLinks(doc, path.Dir(docPath), exts)

	var out bytes.Buffer
	if err := html.Render(&out, doc); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func rewriteLinks(n *html.Node, dir string, exts []string) {
	if n.Type == html.ElementNode && n.Data == "a" {
		for i, attr := range n.Attr {
			if attr.Key == "href" {
				if href, ok := docHref(dir, attr.Val, exts); ok {
					n.Attr[i].Val = href
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteLinks(c, dir, exts)
	}
}

// docHref maps a link found in a document under dir to its preview URL.
// External links, anchors and non-markdown targets are left alone.
func docHref(dir, href string, exts []string) (string, bool) {
	u, err := url.Parse(href)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" || path.IsAbs(u.Path) {
		return "", false
	}
	if !parser.HasExtension(u.Path, exts) {
		return "", false
	}
	target := path.Join(dir, u.Path)
	if target == ".." || strings.HasPrefix(target, "../") {
		return "", false
	}

	out := "/docs/" + target
	if u.Fragment != "" {
		out += "#" + u.Fragment
	}
	return out, true
}
