package site

// pageTemplate is the Go html/template for every page of the book.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" class="{{.ThemeClass}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.BookTitle}}</title>
  {{if .Description}}<meta name="description" content="{{.Description}}">{{end}}
  <link rel="stylesheet" href="/assets/style.css">
</head>
<body data-view="{{.View}}" data-chat-path="{{.ChatPath}}"{{if .Static}} data-static="true"{{end}}>
  <header class="navbar">
    <div class="navbar-left">
      <button class="menu-toggle" id="menu-toggle" aria-label="Toggle sidebar">
        <svg width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
        </svg>
      </button>
      <a href="/" class="brand">
        <span class="brand-title">{{.BookTitle}}</span>
        {{if .Tagline}}<span class="brand-tagline">| {{.Tagline}}</span>{{end}}
      </a>
    </div>
    <div class="navbar-right">
      <nav class="navbar-links">
        <a href="{{.DefaultPath}}">Docs</a>
        <a href="{{.ChatPath}}">Ask</a>
      </nav>
      <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme" aria-pressed="{{.Dark}}">
        <svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/>
        </svg>
        <svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
        </svg>
      </button>
      <div class="search-box">
        <input type="search" id="search-input" placeholder="Search (&#8984;K)" autocomplete="off" aria-label="Search the book">
        <div class="search-results" id="search-results" hidden></div>
      </div>
    </div>
  </header>

  <div class="layout">
    <aside class="sidebar" id="sidebar">
      {{.NavHTML}}
    </aside>
    <div class="sidebar-overlay" id="sidebar-overlay"></div>

    <div class="main">
      {{if eq .View "chapter"}}
      <div class="doc">
        <main class="doc-main">
          <article class="page-content">
            <h1 class="doc-title">{{.Title}}</h1>
            {{if .Description}}<p class="doc-description">{{.Description}}</p>{{end}}
            <hr>
            {{.Content}}
          </article>
          <div class="doc-footer">
            <span class="doc-edit">Edit this page on GitHub</span>
            <span class="doc-updated">Last updated by {{.BookTitle}} Bot</span>
          </div>
        </main>
        {{if .OutlineHTML}}<aside class="doc-outline">{{.OutlineHTML}}</aside>{{end}}
      </div>
      {{else if eq .View "chat"}}
      <div class="ask">
        <section class="chat-panel" id="chat-panel">
          <div class="chat-header">
            <h2>{{.Title}}</h2>
            <span class="chat-badge">Beta</span>
          </div>
          <div class="chat-body" id="chat-body">
            <div class="chat-empty" id="chat-empty">
              <div class="chat-icon" aria-hidden="true"></div>
              <p class="chat-prompt">How can I help you learn today?</p>
              <div class="chat-suggestions">
                {{range .Suggestions}}<button type="button" class="chat-suggestion">{{.}}</button>{{end}}
              </div>
              <p class="chat-note">(Iframe Placeholder for RAG Agent)</p>
            </div>
            <div class="chat-log" id="chat-log"></div>
          </div>
          <form class="chat-form" id="chat-form">
            <input type="text" id="chat-input" placeholder="Ask about the book..." autocomplete="off">
            <button type="submit">Send</button>
          </form>
        </section>
      </div>
      {{else}}
      <div class="not-found">
        <h2>{{.Title}}</h2>
        <a href="{{.DefaultPath}}">Go to {{if .DefaultTitle}}{{.DefaultTitle}}{{else}}the first chapter{{end}}</a>
      </div>
      {{end}}

      <footer class="footer">
        <div class="footer-title">{{.BookTitle}}</div>
        <p>Copyright &copy; {{.Year}} {{.BookTitle}}. Built with livebook &amp; Spec-Kit Plus.</p>
      </footer>
    </div>
  </div>
  <script src="/assets/script.js"></script>
</body>
</html>`

// cssContent is the stylesheet served at /assets/style.css.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --bg-sidebar: #ffffff;
  --text: #1c1e21;
  --text-secondary: #444950;
  --text-muted: #8d949e;
  --border: #e5e7eb;
  --accent: #0ea5e9;
  --accent-strong: #2563eb;
  --accent-light: #e0f2fe;
  --code-bg: #282a36;
  --navbar-height: 64px;
  --sidebar-width: 288px;
  --content-max-width: 768px;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
  --shadow-lg: 0 8px 24px rgba(0,0,0,0.12);
}

html.dark {
  --bg: #1b1b1d;
  --bg-secondary: #242526;
  --bg-sidebar: #161618;
  --text: #e3e3e3;
  --text-secondary: #b0b3b8;
  --text-muted: #6b7280;
  --border: #2f3033;
  --accent: #38bdf8;
  --accent-strong: #60a5fa;
  --accent-light: rgba(14,165,233,0.1);
  --shadow: 0 1px 3px rgba(0,0,0,0.3);
  --shadow-lg: 0 8px 24px rgba(0,0,0,0.5);
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--text);
  line-height: 1.6;
}

a { color: var(--accent-strong); text-decoration: none; }
a:hover { text-decoration: underline; }

/* ============ Navbar ============ */
.navbar {
  position: fixed;
  top: 0;
  left: 0;
  right: 0;
  z-index: 40;
  height: var(--navbar-height);
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 0 24px;
  background: var(--bg);
  border-bottom: 1px solid var(--border);
}

.navbar-left, .navbar-right { display: flex; align-items: center; gap: 16px; }

.brand { display: flex; align-items: center; gap: 8px; font-size: 20px; font-weight: 700; color: var(--text); }
.brand:hover { text-decoration: none; }
.brand-title {
  background: linear-gradient(90deg, #06b6d4, #2563eb);
  -webkit-background-clip: text;
  background-clip: text;
  color: transparent;
}
.brand-tagline { font-weight: 400; color: var(--text-muted); }

.navbar-links { display: flex; gap: 16px; font-size: 14px; font-weight: 500; }
.navbar-links a { color: var(--text-secondary); }

.menu-toggle, .theme-toggle {
  background: none;
  border: none;
  padding: 8px;
  cursor: pointer;
  color: var(--text-secondary);
}
.menu-toggle { display: none; }
.theme-toggle { color: #eab308; }
.theme-toggle .sun-icon { display: none; }
html.dark .theme-toggle .sun-icon { display: inline; }
html.dark .theme-toggle .moon-icon { display: none; }

/* ============ Search ============ */
.search-box { position: relative; }
.search-box input {
  width: 220px;
  padding: 6px 12px;
  border-radius: 8px;
  border: 1px solid transparent;
  background: var(--bg-secondary);
  color: var(--text);
  font-size: 14px;
}
.search-box input:focus { outline: none; border-color: var(--accent); }
.search-results {
  position: absolute;
  right: 0;
  top: 40px;
  width: 360px;
  max-height: 420px;
  overflow-y: auto;
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: 8px;
  box-shadow: var(--shadow-lg);
}
.search-result { display: block; padding: 10px 14px; border-bottom: 1px solid var(--border); color: var(--text); }
.search-result:hover { background: var(--bg-secondary); text-decoration: none; }
.search-result-title { font-weight: 600; font-size: 14px; }
.search-result-summary { font-size: 12px; color: var(--text-muted); }
.search-empty { padding: 12px 14px; font-size: 13px; color: var(--text-muted); }

/* ============ Layout ============ */
.layout { display: flex; padding-top: var(--navbar-height); min-height: 100vh; }

.sidebar {
  position: fixed;
  top: var(--navbar-height);
  bottom: 0;
  left: 0;
  width: var(--sidebar-width);
  overflow-y: auto;
  padding: 16px;
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  z-index: 30;
  transition: transform 0.3s ease;
}

.sidebar-overlay { display: none; }

.main { flex: 1; display: flex; flex-direction: column; margin-left: var(--sidebar-width); min-width: 0; }

/* ============ Navigation tree ============ */
.nav-branch { margin-bottom: 4px; }
.nav-toggle {
  display: flex;
  align-items: center;
  width: 100%;
  padding: 6px 12px;
  background: none;
  border: none;
  border-radius: 6px;
  font-size: 14px;
  font-weight: 500;
  color: var(--text-secondary);
  cursor: pointer;
  text-align: left;
}
.nav-toggle:hover { background: var(--bg-secondary); }
.nav-toggle.top-level { margin: 16px 0 8px; font-weight: 700; color: var(--text); }
.nav-label { flex: 1; }
.chevron { width: 8px; height: 8px; border-right: 2px solid currentColor; border-bottom: 2px solid currentColor; transition: transform 0.2s; }
.chevron-down { transform: rotate(45deg); }
.chevron-right { transform: rotate(-45deg); }
.nav-children[hidden] { display: none; }

.nav-link { display: block; padding: 8px 16px; font-size: 14px; border-radius: 6px 0 0 6px; }
.nav-link.inactive { color: var(--text-secondary); }
.nav-link.inactive:hover { color: var(--accent-strong); background: var(--bg-secondary); text-decoration: none; }
.nav-link.active { color: var(--accent-strong); background: var(--accent-light); font-weight: 500; border-right: 2px solid var(--accent); }
.nav-inert { display: block; padding: 8px 16px; font-size: 14px; color: var(--text-muted); }

/* ============ Chapter ============ */
.doc { display: flex; width: 100%; max-width: 1280px; margin: 0 auto; }
.doc-main { flex: 1; min-width: 0; padding: 32px; }
.page-content { max-width: var(--content-max-width); margin: 0 auto; color: var(--text-secondary); }
.doc-title { font-size: 36px; font-weight: 800; color: var(--text); margin: 0 0 16px; line-height: 1.2; }
.doc-description { font-size: 20px; color: var(--text-muted); margin-bottom: 32px; }
.page-content hr { border: none; border-top: 1px solid var(--border); margin: 32px 0; }
.page-content h2 { font-size: 26px; color: var(--text); margin: 40px 0 16px; scroll-margin-top: 80px; }
.page-content h3 { font-size: 20px; color: var(--text); margin: 28px 0 12px; scroll-margin-top: 80px; }
.page-content code { font-size: 0.9em; padding: 2px 6px; border-radius: 4px; background: var(--bg-secondary); }
.page-content pre { position: relative; margin: 0; padding: 16px; overflow-x: auto; border-radius: 8px; background: var(--code-bg); }
.page-content pre code { padding: 0; background: none; }

.page-content table { width: 100%; border-collapse: collapse; margin: 24px 0; font-size: 14px; }
.page-content th { text-align: left; background: var(--bg-secondary); color: var(--text); }
.page-content th, .page-content td { padding: 10px 14px; border: 1px solid var(--border); }

.doc-footer {
  max-width: var(--content-max-width);
  margin: 64px auto 0;
  padding-top: 32px;
  border-top: 1px solid var(--border);
  display: flex;
  justify-content: space-between;
  font-size: 14px;
  color: var(--accent-strong);
}
.doc-updated { color: var(--text-muted); }

/* ============ Outline ============ */
.doc-outline { width: 256px; padding: 32px 16px 0 0; }
.outline { position: sticky; top: 96px; }
.outline-title { font-size: 12px; font-weight: 700; text-transform: uppercase; letter-spacing: 0.05em; color: var(--text); margin: 0 0 16px 12px; }
.outline-list { list-style: none; margin: 0; padding: 0; border-left: 1px solid var(--border); }
.outline-link { display: block; padding: 4px 12px; font-size: 12px; line-height: 20px; color: var(--text-muted); border-left: 2px solid transparent; margin-left: -1px; }
.outline-link:hover { color: var(--accent-strong); border-left-color: var(--accent); text-decoration: none; }
.outline-link.indent { margin-left: 8px; }

/* ============ Code blocks ============ */
.code-block { margin: 24px 0; border-radius: 8px; overflow: hidden; border: 1px solid var(--border); }
.code-header { display: flex; justify-content: space-between; padding: 8px 16px; font-size: 12px; background: #21222c; color: #9ca3af; }
.code-filename { font-family: monospace; }
.code-lang { text-transform: uppercase; letter-spacing: 0.05em; }
.code-block pre { border-radius: 0; }
.copy-button {
  position: absolute;
  top: 8px;
  right: 8px;
  padding: 4px 8px;
  font-size: 12px;
  border: none;
  border-radius: 4px;
  background: rgba(255,255,255,0.1);
  color: #e5e7eb;
  cursor: pointer;
  opacity: 0;
  transition: opacity 0.2s;
}
pre:hover .copy-button { opacity: 1; }

/* ============ Admonitions ============ */
.admonition { margin: 24px 0; padding: 16px; border-left: 4px solid; border-radius: 0 8px 8px 0; }
.admonition-title { margin: 0 0 8px; font-weight: 700; text-transform: uppercase; font-size: 13px; display: flex; align-items: center; gap: 8px; }
.admonition-body > :last-child { margin-bottom: 0; }
.admonition-note { border-color: #9ca3af; background: rgba(156,163,175,0.1); }
.admonition-tip { border-color: #22c55e; background: rgba(34,197,94,0.1); }
.admonition-info { border-color: #3b82f6; background: rgba(59,130,246,0.1); }
.admonition-warning { border-color: #eab308; background: rgba(234,179,8,0.1); }
.admonition-danger { border-color: #ef4444; background: rgba(239,68,68,0.1); }
.admonition-icon { width: 14px; height: 14px; border-radius: 50%; background: currentColor; opacity: 0.6; }

/* ============ Diagrams ============ */
.diagram { margin: 32px 0; text-align: center; }
.diagram-frame { padding: 24px; border: 1px dashed var(--border); border-radius: 8px; background: var(--bg-secondary); }
.diagram-label { font-size: 12px; font-weight: 700; text-transform: uppercase; color: var(--text-muted); margin-bottom: 12px; }
.mermaid-source { text-align: left; font-size: 13px; color: var(--text-secondary); background: none; white-space: pre-wrap; }
.diagram-footer { margin-top: 12px; font-size: 12px; color: var(--text-muted); }
.diagram figcaption { margin-top: 8px; font-size: 14px; font-style: italic; color: var(--text-muted); }

/* ============ Badges ============ */
.badge { display: inline-block; padding: 2px 8px; font-size: 12px; font-weight: 600; border-radius: 9999px; }
.badge-blue { background: #dbeafe; color: #1e40af; }
.badge-green { background: #dcfce7; color: #166534; }
.badge-yellow { background: #fef9c3; color: #854d0e; }
.badge-red { background: #fee2e2; color: #991b1b; }

/* ============ Comparison cards ============ */
.compare { display: grid; grid-template-columns: 1fr 1fr; gap: 16px; margin: 24px 0; }
.compare-card { padding: 16px; border-radius: 8px; border: 1px solid var(--border); }
.compare-card.legacy { border-color: rgba(239,68,68,0.4); }
.compare-card.native { border-color: rgba(34,197,94,0.4); }

/* ============ Chat ============ */
.ask { display: flex; justify-content: center; align-items: center; min-height: 80vh; padding: 32px; }
.chat-panel { width: 100%; max-width: 896px; height: 600px; display: flex; flex-direction: column; border: 1px solid var(--border); border-radius: 12px; overflow: hidden; box-shadow: var(--shadow-lg); background: var(--bg-secondary); }
.chat-header { display: flex; justify-content: space-between; align-items: center; padding: 16px; color: #fff; background: linear-gradient(90deg, #0284c7, #1d4ed8); }
.chat-header h2 { margin: 0; font-size: 16px; }
.chat-badge { font-size: 12px; padding: 2px 8px; border-radius: 9999px; background: rgba(255,255,255,0.2); }
.chat-body { flex: 1; overflow-y: auto; padding: 16px; }
.chat-empty { height: 100%; display: flex; flex-direction: column; align-items: center; justify-content: center; gap: 16px; color: var(--text-muted); }
.chat-icon { width: 80px; height: 80px; border-radius: 50%; background: var(--accent-light); }
.chat-prompt { font-size: 18px; font-weight: 500; margin: 0; }
.chat-suggestions { display: flex; gap: 8px; }
.chat-suggestion { padding: 8px 16px; font-size: 14px; border: 1px solid var(--border); border-radius: 8px; background: var(--bg); color: var(--text); cursor: pointer; }
.chat-suggestion:hover { border-color: var(--accent); }
.chat-note { font-size: 12px; margin-top: 32px; opacity: 0.5; }
.chat-message { margin: 8px 0; padding: 10px 14px; border-radius: 8px; max-width: 80%; }
.chat-message.user { margin-left: auto; background: var(--accent-strong); color: #fff; }
.chat-message.assistant { background: var(--bg); border: 1px solid var(--border); }
.chat-message.error { background: rgba(239,68,68,0.1); color: #ef4444; }
.chat-related { margin-top: 8px; font-size: 13px; }
.chat-form { display: flex; gap: 8px; padding: 12px; border-top: 1px solid var(--border); }
.chat-form input { flex: 1; padding: 8px 12px; border: 1px solid var(--border); border-radius: 8px; background: var(--bg); color: var(--text); }
.chat-form button { padding: 8px 16px; border: none; border-radius: 8px; background: var(--accent-strong); color: #fff; cursor: pointer; }

/* ============ Not found ============ */
.not-found { padding: 48px; text-align: center; }
.not-found h2 { font-size: 24px; margin-bottom: 16px; }

/* ============ Footer ============ */
.footer { margin-top: auto; padding: 48px 24px; text-align: center; border-top: 1px solid var(--border); background: var(--bg-secondary); font-size: 14px; color: var(--text-muted); }
.footer-title { font-size: 18px; font-weight: 700; color: var(--text); margin-bottom: 16px; }

/* ============ Responsive ============ */
@media (max-width: 1280px) {
  .doc-outline { display: none; }
}

@media (max-width: 1024px) {
  .menu-toggle { display: block; }
  .sidebar { transform: translateX(-100%); }
  .sidebar.open { transform: translateX(0); }
  .sidebar-overlay.visible { display: block; position: fixed; inset: 0; z-index: 20; background: rgba(0,0,0,0.4); }
  .main { margin-left: 0; }
}

@media (max-width: 768px) {
  .navbar-links, .brand-tagline, .search-box { display: none; }
  .compare { grid-template-columns: 1fr; }
}
`

// jsContent is the page script served at /assets/script.js.
const jsContent = `(function() {
  "use strict";

  // ===== Legacy fragment routes =====
  // Old links look like /#/docs/preface. Send them to the real path.
  if (location.hash.indexOf("#/") === 0) {
    location.replace(location.hash.slice(1));
    return;
  }

  // Every chapter is a fresh document; start at the top unless a
  // fragment targets a heading.
  if (!location.hash) {
    window.scrollTo(0, 0);
  }

  var html = document.documentElement;

  // ===== Theme toggle =====
  var themeToggle = document.getElementById("theme-toggle");

  function applyTheme(dark) {
    html.classList.toggle("dark", dark);
    if (themeToggle) themeToggle.setAttribute("aria-pressed", dark ? "true" : "false");
    try { localStorage.setItem("livebook-theme", dark ? "dark" : "light"); } catch(e) {}
  }

  // The static export has no API; fall back to the stored preference.
  if (document.body.getAttribute("data-static") === "true") {
    try {
      var stored = localStorage.getItem("livebook-theme");
      if (stored) applyTheme(stored === "dark");
    } catch(e) {}
  }

  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      var wasDark = html.classList.contains("dark");
      fetch("/api/theme", { method: "POST" })
        .then(function(r) {
          if (!r.ok) throw new Error("theme request failed");
          return r.json();
        })
        .then(function(data) { applyTheme(!!data.dark); })
        .catch(function() { applyTheme(!wasDark); });
    });
  }

  // ===== Sidebar toggle (mobile) =====
  var menuToggle = document.getElementById("menu-toggle");
  var sidebar = document.getElementById("sidebar");
  var overlay = document.getElementById("sidebar-overlay");

  function toggleSidebar() {
    sidebar.classList.toggle("open");
    overlay.classList.toggle("visible");
  }

  if (menuToggle) menuToggle.addEventListener("click", toggleSidebar);
  if (overlay) overlay.addEventListener("click", toggleSidebar);

  // ===== Navigation tree toggle =====
  // Collapsed keys go to a cookie so the next page renders the same tree.
  var navCookie = "livebook_nav";

  function collapsedKeys() {
    var keys = [];
    document.querySelectorAll(".nav-toggle[aria-expanded=false]").forEach(function(btn) {
      keys.push(btn.getAttribute("data-nav-key"));
    });
    return keys;
  }

  function saveNavState() {
    document.cookie = navCookie + "=" + encodeURIComponent(collapsedKeys().join("\n")) + "; path=/; SameSite=Lax";
  }

  document.querySelectorAll(".nav-toggle").forEach(function(btn) {
    btn.addEventListener("click", function() {
      var expanded = btn.getAttribute("aria-expanded") !== "true";
      btn.setAttribute("aria-expanded", expanded ? "true" : "false");
      var children = btn.nextElementSibling;
      if (children) children.hidden = !expanded;
      var chevron = btn.querySelector(".chevron");
      if (chevron) {
        chevron.classList.toggle("chevron-down", expanded);
        chevron.classList.toggle("chevron-right", !expanded);
      }
      saveNavState();
    });
  });

  // ===== Copy buttons =====
  document.querySelectorAll(".page-content pre").forEach(function(pre) {
    if (pre.classList.contains("mermaid-source")) return;
    var btn = document.createElement("button");
    btn.type = "button";
    btn.className = "copy-button";
    btn.textContent = "Copy";
    btn.addEventListener("click", function() {
      var code = pre.querySelector("code");
      var text = (code || pre).innerText;
      if (!navigator.clipboard) return;
      navigator.clipboard.writeText(text).then(function() {
        btn.textContent = "Copied";
        setTimeout(function() { btn.textContent = "Copy"; }, 2000);
      });
    });
    pre.appendChild(btn);
  });

  // ===== Search =====
  var searchInput = document.getElementById("search-input");
  var searchResults = document.getElementById("search-results");
  var searchIndex = null;
  var searchTimer = null;

  function escapeHTML(s) {
    return String(s).replace(/[&<>"']/g, function(c) {
      return { "&": "&amp;", "<": "&lt;", ">": "&gt;", '"': "&quot;", "'": "&#39;" }[c];
    });
  }

  function showResults(results) {
    if (!results.length) {
      searchResults.innerHTML = '<div class="search-empty">No results</div>';
    } else {
      searchResults.innerHTML = results.map(function(r) {
        return '<a class="search-result" href="' + escapeHTML(r.path) + '">' +
          '<div class="search-result-title">' + escapeHTML(r.title) + '</div>' +
          '<div class="search-result-summary">' + escapeHTML(r.summary || "") + '</div></a>';
      }).join("");
    }
    searchResults.hidden = false;
  }

  // Client-side fallback for the static export.
  function localSearch(query) {
    var terms = query.toLowerCase().split(/\s+/).filter(Boolean);
    var scored = [];
    (searchIndex || []).forEach(function(e, i) {
      var score = 0;
      var title = e.title.toLowerCase();
      var summary = (e.summary || "").toLowerCase();
      var content = (e.content || "").toLowerCase();
      terms.forEach(function(t) {
        if (title.indexOf(t) !== -1) score += 3;
        if (summary.indexOf(t) !== -1) score += 2;
        if (content.indexOf(t) !== -1) score += 1;
      });
      if (score > 0) scored.push({ entry: e, score: score, order: i });
    });
    scored.sort(function(a, b) { return b.score - a.score || a.order - b.order; });
    return scored.slice(0, 8).map(function(s) { return s.entry; });
  }

  function runSearch(query) {
    fetch("/api/search?q=" + encodeURIComponent(query))
      .then(function(r) {
        if (!r.ok) throw new Error("search request failed");
        return r.json();
      })
      .then(function(data) { showResults(data.results || []); })
      .catch(function() {
        if (searchIndex) {
          showResults(localSearch(query));
          return;
        }
        fetch("/search-index.json")
          .then(function(r) { return r.json(); })
          .then(function(data) { searchIndex = data; showResults(localSearch(query)); })
          .catch(function() { showResults([]); });
      });
  }

  if (searchInput && searchResults) {
    searchInput.addEventListener("input", function() {
      var query = this.value.trim();
      clearTimeout(searchTimer);
      if (!query) {
        searchResults.hidden = true;
        return;
      }
      searchTimer = setTimeout(function() { runSearch(query); }, 150);
    });

    document.addEventListener("keydown", function(e) {
      if ((e.metaKey || e.ctrlKey) && e.key === "k") {
        e.preventDefault();
        searchInput.focus();
      }
      if (e.key === "Escape") {
        searchResults.hidden = true;
        searchInput.blur();
      }
    });

    document.addEventListener("click", function(e) {
      if (!searchResults.contains(e.target) && e.target !== searchInput) {
        searchResults.hidden = true;
      }
    });
  }

  // ===== Chat placeholder =====
  var chatPanel = document.getElementById("chat-panel");
  if (chatPanel) {
    var chatLog = document.getElementById("chat-log");
    var chatEmpty = document.getElementById("chat-empty");
    var chatForm = document.getElementById("chat-form");
    var chatInput = document.getElementById("chat-input");
    var sessionID = "";
    var socket = null;
    var pending = [];

    function appendMessage(kind, text, related) {
      if (chatEmpty) chatEmpty.hidden = true;
      var div = document.createElement("div");
      div.className = "chat-message " + kind;
      div.textContent = text;
      if (related && related.length) {
        var list = document.createElement("div");
        list.className = "chat-related";
        list.innerHTML = "Related: " + related.map(function(r) {
          return '<a href="' + escapeHTML(r.path) + '">' + escapeHTML(r.title) + '</a>';
        }).join(", ");
        div.appendChild(list);
      }
      chatLog.appendChild(div);
      chatLog.scrollTop = chatLog.scrollHeight;
    }

    function connect() {
      var proto = location.protocol === "https:" ? "wss://" : "ws://";
      try {
        socket = new WebSocket(proto + location.host + "/ws/chat");
      } catch(e) {
        socket = null;
        return;
      }
      socket.onopen = function() {
        pending.forEach(function(m) { socket.send(m); });
        pending = [];
      };
      socket.onmessage = function(ev) {
        var msg = JSON.parse(ev.data);
        if (msg.session_id) sessionID = msg.session_id;
        appendMessage(msg.type === "error" ? "error" : "assistant", msg.content, msg.related);
      };
      socket.onclose = function() { socket = null; };
    }

    function ask(text) {
      text = text.trim();
      if (!text) return;
      appendMessage("user", text);
      var payload = JSON.stringify({ type: "ask", session_id: sessionID, content: text });
      if (!socket) connect();
      if (!socket) {
        appendMessage("error", "The assistant is not available in this build.");
        return;
      }
      if (socket.readyState === WebSocket.OPEN) {
        socket.send(payload);
      } else {
        pending.push(payload);
      }
    }

    chatPanel.querySelectorAll(".chat-suggestion").forEach(function(btn) {
      btn.addEventListener("click", function() { ask(btn.textContent); });
    });

    if (chatForm) {
      chatForm.addEventListener("submit", function(e) {
        e.preventDefault();
        ask(chatInput.value);
        chatInput.value = "";
      });
    }
  }
})();
`
