package web

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>portly</title>
<style>
  body { background: #1e1e1e; color: #d4d4d4; font-family: "SF Mono", Consolas, monospace; margin: 0; }
  .wrap { max-width: 760px; margin: 40px auto; padding: 0 20px; }
  h1 { color: #4ec9b0; font-size: 1.4em; }
  h1 span { color: #6a9955; font-size: 0.7em; }
  form { background: #252526; border: 1px solid #3c3c3c; border-radius: 4px; padding: 16px; }
  label { display: block; color: #9cdcfe; font-size: 0.85em; margin: 10px 0 4px; }
  input { width: 100%; box-sizing: border-box; background: #1e1e1e; color: #d4d4d4;
          border: 1px solid #3c3c3c; border-radius: 3px; padding: 7px; font: inherit; }
  button { margin-top: 14px; background: #0e639c; color: #fff; border: 0; border-radius: 3px;
           padding: 9px 22px; font: inherit; cursor: pointer; }
  button:disabled { background: #3c3c3c; }
  #out { margin-top: 20px; }
  table { width: 100%; border-collapse: collapse; background: #252526; }
  th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid #3c3c3c; font-size: 0.9em; }
  th { color: #9cdcfe; }
  .open { color: #6a9955; }
  .error { color: #f48771; }
  .meta { color: #808080; font-size: 0.85em; margin-top: 8px; }
</style>
</head>
<body>
<div class="wrap">
  <h1>portly <span>// tcp connect scanner</span></h1>
  <form id="scan-form">
    <label for="target">target host</label>
    <input id="target" placeholder="scanme.nmap.org" required>
    <label for="ports">ports</label>
    <input id="ports" value="{{.DefaultPorts}}">
    <label for="timeout">timeout (seconds)</label>
    <input id="timeout" type="number" step="0.1" min="0.1" value="{{.TimeoutSeconds}}">
    <label for="workers">workers</label>
    <input id="workers" type="number" min="1" value="{{.Workers}}">
    <button id="go" type="submit">scan</button>
  </form>
  <div id="out"></div>
</div>
<script>
const form = document.getElementById("scan-form");
const out = document.getElementById("out");
const btn = document.getElementById("go");

form.addEventListener("submit", async (ev) => {
  ev.preventDefault();
  btn.disabled = true;
  out.innerHTML = '<p class="meta">scanning…</p>';
  try {
    const resp = await fetch("/api/scan", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({
        target: document.getElementById("target").value,
        ports: document.getElementById("ports").value,
        timeout: parseFloat(document.getElementById("timeout").value),
        workers: parseInt(document.getElementById("workers").value, 10),
      }),
    });
    const data = await resp.json();
    if (!data.success) {
      out.innerHTML = '<p class="error">' + escapeHTML(data.error || "scan failed") + "</p>";
      return;
    }
    render(data);
  } catch (err) {
    out.innerHTML = '<p class="error">' + escapeHTML(String(err)) + "</p>";
  } finally {
    btn.disabled = false;
  }
});

function render(data) {
  let html = "";
  if (data.results.length === 0) {
    html += '<p class="meta">No open ports found.</p>';
  } else {
    html += "<table><tr><th>port</th><th>status</th><th>service</th></tr>";
    for (const r of data.results) {
      html += "<tr><td>" + r.port + '/tcp</td><td class="' + r.status + '">' + r.status +
              "</td><td>" + escapeHTML(r.service || "") + "</td></tr>";
    }
    html += "</table>";
  }
  html += '<p class="meta">' + data.total_ports + " ports scanned, " + data.open_ports +
          " open, in " + data.scan_time_seconds.toFixed(2) + "s</p>";
  out.innerHTML = html;
}

function escapeHTML(s) {
  const div = document.createElement("div");
  div.textContent = s;
  return div.innerHTML;
}
</script>
</body>
</html>
`
