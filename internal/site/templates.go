package site

// cssContent is the stylesheet for the portfolio page.
const cssContent = `:root {
  --fg: #1e293b;
  --muted: #475569;
  --faint: #64748b;
  --rule: #e2e8f0;
  --hover: #f8fafc;
  --accent: #0f172a;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  min-height: 100vh;
  display: flex;
  flex-direction: column;
  color: var(--fg);
  background: #fff;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
  line-height: 1.5;
}

[hidden] { display: none !important; }

.site-header { border-bottom: 1px solid var(--rule); }
.site-nav {
  max-width: 48rem;
  margin: 0 auto;
  padding: 0 1.5rem;
  height: 3.5rem;
  display: flex;
  align-items: center;
  justify-content: flex-end;
  gap: 1.5rem;
  font-size: 0.875rem;
}
.nav-link { color: inherit; text-decoration: none; }
.nav-link:hover { opacity: 0.8; }
.nav-link[aria-current="page"] { font-weight: 600; }

.site-main {
  flex: 1;
  width: 100%;
  max-width: 48rem;
  margin: 0 auto;
  padding: 2.5rem 1.5rem;
}

.home {
  display: grid;
  grid-template-columns: 260px 1fr;
  gap: 3rem;
  align-items: start;
}
.headshot {
  width: 16rem;
  height: 16rem;
  border-radius: 50%;
  object-fit: cover;
  box-shadow: 0 0 0 1px var(--rule);
}
.profile-name { font-size: 3rem; line-height: 1.1; margin: 0; letter-spacing: -0.02em; }
.profile-title { margin: 1rem 0 0; font-size: 1.125rem; color: var(--muted); }
.profile-affiliation { margin: 0; color: var(--muted); }
.intro { margin-top: 2rem; color: var(--muted); }
.intro .highlight { font-weight: 600; }

.contact-links, .shortcuts {
  display: flex;
  flex-wrap: wrap;
  gap: 0.75rem;
  margin-top: 1.5rem;
  font-size: 0.875rem;
}
.button {
  display: inline-flex;
  align-items: center;
  padding: 0.5rem 1rem;
  border-radius: 0.5rem;
  box-shadow: 0 0 0 1px var(--rule);
  color: inherit;
  text-decoration: none;
}
.button:hover { background: var(--hover); }
.button-primary { background: var(--accent); color: #fff; box-shadow: none; }
.button-primary:hover { background: var(--accent); opacity: 0.9; }

.research { display: flex; flex-direction: column; gap: 2rem; }
.paper-group h2, .teaching h2 { font-size: 1.25rem; margin: 0 0 0.5rem; }
.paper-item { margin-top: 1rem; }
.paper-title { font-weight: 500; }
.paper-coauthors { font-size: 0.875rem; color: var(--muted); }
.paper-controls { margin-top: 0.25rem; display: flex; gap: 0.5rem; font-size: 0.875rem; }
.paper-link {
  color: inherit;
  text-decoration: underline;
  background: none;
  border: 0;
  padding: 0;
  font: inherit;
  cursor: pointer;
}
.paper-note { font-size: 0.875rem; color: var(--faint); margin: 0.25rem 0 0; }
.abstract { margin-top: 0.75rem; font-size: 0.875rem; color: var(--muted); line-height: 1.7; }
.placeholder { font-size: 0.875rem; color: var(--muted); }

.teaching-entry { margin-top: 1rem; }
.teaching-heading { display: flex; justify-content: space-between; gap: 1rem; }
.teaching-course { font-weight: 500; }
.teaching-term { font-size: 0.875rem; color: var(--faint); }
.teaching-role { font-size: 0.875rem; color: var(--muted); }
.teaching-notes { font-size: 0.875rem; color: var(--muted); }
.teaching-links { display: flex; gap: 0.5rem; font-size: 0.875rem; }

.site-footer { border-top: 1px solid var(--rule); margin-top: 3rem; padding: 1.5rem; font-size: 0.875rem; }
.copyright { max-width: 48rem; margin: 0 auto; color: var(--faint); }

@media (max-width: 768px) {
  .home { grid-template-columns: 1fr; gap: 2rem; }
  .headshot { width: 14rem; height: 14rem; }
  .profile-name { font-size: 2.25rem; }
}
`

// jsContent applies the fragment routing rules in the browser, toggles
// abstracts, and connects to the dev server's reload socket when asked to.
// parseRoute and fragments must stay in step with router.Parse and
// Route.Fragment.
const jsContent = `(function () {
  'use strict';

  var fragments = { home: '#/', research: '#/research', teaching: '#/teaching' };
  var endpoint = document.body.getAttribute('data-render-endpoint');

  function parseRoute(hash) {
    if (hash && hash.charAt(0) !== '#') hash = '#' + hash;
    if (hash.indexOf('#/research') === 0) return 'research';
    if (hash.indexOf('#/teaching') === 0) return 'teaching';
    return 'home';
  }

  function show(route) {
    var views = document.querySelectorAll('section.view[data-route]');
    var found = false;
    for (var i = 0; i < views.length; i++) {
      var on = views[i].getAttribute('data-route') === route;
      views[i].hidden = !on;
      if (on) found = true;
    }
    if (!found) {
      if (endpoint) {
        // Keep toggle parameters so the other route renders with the same abstracts.
        var params = new URLSearchParams(window.location.search);
        params.set('fragment', window.location.hash);
        window.location.href = endpoint + '?' + params.toString();
      }
      return;
    }
    document.body.setAttribute('data-active-route', route);
    var links = document.querySelectorAll('[data-nav-route]');
    for (var j = 0; j < links.length; j++) {
      if (parseRoute(links[j].getAttribute('data-nav-route')) === route) {
        links[j].setAttribute('aria-current', 'page');
      } else {
        links[j].removeAttribute('aria-current');
      }
    }
  }

  // A rendered single-route document carries its route in the body rather
  // than in the URL hash.
  if (!window.location.hash) {
    var initial = '#/';
    if (endpoint) initial = fragments[document.body.getAttribute('data-active-route')] || initial;
    if (window.history && window.history.replaceState) {
      window.history.replaceState(null, '', initial);
    } else {
      window.location.hash = initial;
    }
  }

  window.addEventListener('hashchange', function () {
    show(parseRoute(window.location.hash));
  });
  show(parseRoute(window.location.hash));

  document.addEventListener('click', function (e) {
    var el = e.target;
    while (el && el !== document && !(el.getAttribute && el.getAttribute('data-toggle'))) {
      el = el.parentNode;
    }
    if (!el || el === document) return;
    // Toggles styled as links must not navigate.
    e.preventDefault();
    var abstract = document.getElementById('abstract-' + el.getAttribute('data-toggle'));
    if (!abstract) return;
    abstract.hidden = !abstract.hidden;
    el.setAttribute('aria-expanded', String(!abstract.hidden));
  });

  if (document.body.getAttribute('data-livereload') === 'true' && window.WebSocket) {
    var scheme = window.location.protocol === 'https:' ? 'wss://' : 'ws://';
    var socket = new WebSocket(scheme + window.location.host + '/livereload');
    socket.onmessage = function (msg) {
      try {
        if (JSON.parse(msg.data).type === 'reload') window.location.reload();
      } catch (err) {}
    };
  }
})();
`
