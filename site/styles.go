package site

// siteCSS is the single stylesheet shared by every generated page. Article
// snapshots carry their geometry inline, so the rules here only cover the
// site chrome and the typographic defaults.
const siteCSS = `:root {
  --hop-ink: #221d16;
  --hop-paper: #faf7f1;
  --hop-accent: #8a5a2b;
  --hop-rule: #d9d0c0;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  color: var(--hop-ink);
  background: var(--hop-paper);
  font-family: Georgia, "Noto Serif", serif;
  line-height: 1.55;
}

a { color: var(--hop-accent); }

.hop-banner {
  display: flex;
  align-items: baseline;
  gap: 1.5rem;
  padding: 0.75rem 1.25rem;
  border-bottom: 1px solid var(--hop-rule);
}
.hop-banner-title {
  font-size: 1.2rem;
  font-weight: bold;
  text-decoration: none;
  color: var(--hop-ink);
}
.hop-banner-nav { display: flex; gap: 1rem; }

.hop-main {
  max-width: 64rem;
  margin: 0 auto;
  padding: 1.5rem 1.25rem 3rem;
}

.hop-footer {
  padding: 1rem 1.25rem;
  border-top: 1px solid var(--hop-rule);
  font-size: 0.85rem;
  color: #6f6657;
}

.hop-hero-intro { max-width: 44rem; }

.hop-featured-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(14rem, 1fr));
  gap: 1rem;
}
.hop-featured-card h3 { margin: 0.5rem 0 0.25rem; }
.hop-cover { width: 100%; height: 10rem; object-fit: cover; display: block; }

.hop-place-card { padding: 0.75rem 0; border-bottom: 1px solid var(--hop-rule); }
.hop-place-card h3 { margin: 0 0 0.25rem; }
.hop-card-facts { margin: 0; font-size: 0.9rem; color: #6f6657; }
.hop-card-summary { margin: 0.25rem 0 0; }

.hop-local-name { font-size: 0.8em; color: #6f6657; margin-left: 0.5rem; }
.hop-tags { list-style: none; display: flex; flex-wrap: wrap; gap: 0.5rem; padding: 0; }
.hop-tag {
  font-size: 0.8rem;
  padding: 0.1rem 0.6rem;
  border: 1px solid var(--hop-rule);
  border-radius: 1rem;
}
.hop-place-intro { color: #6f6657; }
.hop-place-trips { font-size: 0.9rem; }

.hop-masonry { width: 100%; }
.hop-masonry-item { margin: 0; overflow: hidden; }
.hop-masonry-img { width: 100%; height: 100%; object-fit: cover; display: block; }
.hop-masonry-cover { outline: 2px solid var(--hop-accent); }

.hop-review { padding: 0.75rem 0; border-top: 1px solid var(--hop-rule); }
.hop-review-header { display: flex; gap: 0.75rem; align-items: baseline; }
.hop-review-author { font-weight: bold; }
.hop-review-rating { color: var(--hop-accent); }

.hop-stops { padding-left: 1.5rem; }
.hop-stop-minutes { color: #6f6657; font-size: 0.9rem; }
.hop-stop-note { margin: 0.2rem 0 0.6rem; font-size: 0.9rem; }
.hop-day-minutes { font-size: 0.8em; font-weight: normal; color: #6f6657; }

.hop-pager { display: flex; gap: 1rem; margin-top: 1.5rem; }
.hop-page-list { list-style: none; padding: 0; }

.hop-era-chart { margin: 0 0 1.5rem; overflow-x: auto; }
.hop-era-span { font-size: 0.8em; font-weight: normal; color: #6f6657; }

.hop-variants { display: flex; gap: 1rem; margin-top: 1.5rem; font-size: 0.9rem; }
.hop-draft-note { color: #a33; font-weight: bold; }

.hop-article .hop-img { display: block; }
.hop-article .hop-figure { margin: 0; }
.hop-article .hop-caption { font-size: 0.85rem; color: #6f6657; }
.hop-article .hop-strip { display: flex; overflow-x: auto; }
.hop-article .hop-quote { font-style: italic; }
`

// WriteStyles writes the shared stylesheet.
func (s *Site) WriteStyles(root string) error {
	return s.writeString(root, s.StylesFileName, siteCSS)
}
