package site

const landingTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <meta name="description" content="{{.Description}}">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  {{- if .Canonical}}
  <link rel="canonical" href="{{.Canonical}}">
  {{- end}}
  <link rel="icon" type="image/svg+xml" href="{{.Logo.Src}}">
  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Neucha&display=swap">
  <link rel="stylesheet" href="style.css">
  <script type="module" src="script.js"></script>
</head>
<body>
<main class="main">
  <div class="header">
    <h1 class="title">{{.Title}}</h1>
    <p class="subtitle">{{.Subtitle}}</p>
    {{template "img" .Logo}}
    <p class="summary">{{.Description}}</p>
  </div>

  <div class="badges">
    {{- range .Badges}}
    <a href="{{.Href}}">{{template "img" .Image}}</a>
    {{- end}}
  </div>
  {{range .Features}}
  <div class="feature">
    <h2>{{.Heading}}</h2>
    {{- range .Paragraphs}}
    <p>{{.}}</p>
    {{- end}}
  </div>
  {{end}}
</main>
</body>
</html>
{{define "img"}}<img src="{{.Src}}" alt="{{.Alt}}" width="{{.Width}}" height="{{.Height}}">{{end}}
`

const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}} - Saber</title>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Neucha&display=swap">
  <link rel="stylesheet" href="style.css">
</head>
<body>
<main class="main document">
  <p class="back"><a href="index.html">&larr; Saber</a></p>
  {{.Content}}
</main>
</body>
</html>
`

const cssContent = `:root {
  --background-color: #fdfcf8;
  --text-color: #1b1b1f;
  --link-color: #3b5bdb;
  --highlight-color: #ffeb3b80;
  --max-width: 720px;
}

@media (prefers-color-scheme: dark) {
  :root {
    --background-color: #17171b;
    --text-color: #e7e5df;
    --link-color: #91a7ff;
    --highlight-color: #8a6d0080;
  }
}

* {
  box-sizing: border-box;
}

html,
body {
  margin: 0;
  padding: 0;
  background: var(--background-color);
  color: var(--text-color);
}

body {
  font-family: "Neucha", "Dekko", "Segoe Print", "Bradley Hand", "Chilanka",
    "TSCu_Comic", casual, cursive;
  font-size: 1.25rem;
  line-height: 1.5;
}

a {
  color: var(--link-color);
}

.main {
  display: flex;
  flex-direction: column;
  align-items: center;
  gap: 3rem;
  max-width: var(--max-width);
  margin: 0 auto;
  padding: 4rem 1.5rem;
}

.header {
  display: flex;
  flex-direction: column;
  align-items: center;
  padding: 1.5rem 3rem;
  text-align: center;
}

.title {
  font-size: 4rem;
  margin: 0;
}

.subtitle {
  margin: 0 0 1rem;
  opacity: 0.8;
}

.summary {
  margin: 1rem 0 0;
}

.badges {
  display: flex;
  flex-wrap: wrap;
  justify-content: center;
  align-items: center;
  gap: 0.5rem 1rem;
  padding: 0 1.5rem;
}

.badges img {
  width: auto;
  height: 56px;
}

.feature {
  width: 100%;
}

.feature h2 {
  display: inline-block;
  margin: 0 0 0.5rem;
}

.feature p {
  margin: 0.5rem 0;
}

.github-logo {
  width: auto;
  height: 1em;
  margin-right: 0.25em;
  vertical-align: middle;
}

.document {
  align-items: stretch;
  gap: 1rem;
}

.document h1 {
  font-size: 2.5rem;
  margin: 0;
}
`

// jsContent replays the annotation group recorded at build time. The page
// owns one group at a time and hides it before drawing a new one or when
// the page is hidden.
const jsContent = `import { annotate, annotationGroup } from "https://unpkg.com/rough-notation@0.5.1/lib/rough-notation.esm.js";

let group = null;

function readAnnotations() {
  const el = document.getElementById("annotations");
  if (!el) {
    return [];
  }
  return JSON.parse(el.textContent);
}

function mount() {
  unmount();
  const handles = [];
  for (const a of readAnnotations()) {
    const target = document.querySelector(a.selector);
    if (!target) {
      throw new Error("annotation target not found: " + a.selector);
    }
    handles.push(annotate(target, a.style));
  }
  group = annotationGroup(handles);
  group.show();
}

function unmount() {
  if (group) {
    group.hide();
    group = null;
  }
}

window.addEventListener("pageshow", mount);
window.addEventListener("pagehide", unmount);
`

const githubMarkPath = `M8 0C3.58 0 0 3.58 0 8c0 3.54 2.29 6.53 5.47 7.59.4.07.55-.17.55-.38 0-.19-.01-.82-.01-1.49-2.01.37-2.53-.49-2.69-.94-.09-.23-.48-.94-.82-1.13-.28-.15-.68-.52-.01-.53.63-.01 1.08.58 1.23.82.72 1.21 1.87.87 2.33.66.07-.52.28-.87.51-1.07-1.78-.2-3.64-.89-3.64-3.95 0-.87.31-1.59.82-2.15-.08-.2-.36-1.02.08-2.12 0 0 .67-.21 2.2.82.64-.18 1.32-.27 2-.27.68 0 1.36.09 2 .27 1.53-1.04 2.2-.82 2.2-.82.44 1.1.16 1.92.08 2.12.51.56.82 1.27.82 2.15 0 3.07-1.87 3.75-3.65 3.95.29.25.54.73.54 1.48 0 1.07-.01 1.93-.01 2.2 0 .21.15.46.55.38A8.013 8.013 0 0016 8c0-4.42-3.58-8-8-8z`

const githubMarkSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16" width="16" height="16"><path fill="#1b1f23" d="` + githubMarkPath + `"/></svg>
`

const githubMarkWhiteSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16" width="16" height="16"><path fill="#ffffff" d="` + githubMarkPath + `"/></svg>
`

const defaultPrivacyPolicy = `# Privacy policy

Saber is built so that only you can read your notes.

## Notes on your device

Notes are stored on your device. Saber does not collect analytics
and does not show ads.

## Syncing

If you choose to sync, your notes are encrypted on your device before
they are uploaded. The sync server only ever stores encrypted data and
cannot read your notes. Your encryption password never leaves your
devices.

## This website

This website is a static page. It does not set cookies and does not
track visitors. Fonts, badge images and the annotation script are loaded
from their respective hosts, which may log your IP address as part of
serving the request.

## Source code

Saber is free and open source software. You can verify all of the above
by reading the code on [GitHub](https://github.com/saber-notes/saber).
`
