package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

// uploadPageHandler serves the single-page upload UI: a file picker, the
// active column mapping, an inline preview of the converted table, and a
// download action for the result.
func (a *API) uploadPageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "upload.html.tmpl", gin.H{
		"Mapping":  a.mapping,
		"FileName": ConvertedFileName,
	})
}

var uploadPageTemplate = template.Must(template.New("upload.html.tmpl").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Real Intent to Pipedrive Converter</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 60rem; color: #222; }
    h1 { font-size: 1.5rem; }
    form { margin: 1rem 0; }
    button { padding: 0.4rem 1rem; cursor: pointer; }
    table { border-collapse: collapse; margin: 1rem 0; }
    th, td { border: 1px solid #ccc; padding: 0.3rem 0.7rem; text-align: left; }
    th { background: #f3f3f3; }
    .note { color: #555; font-size: 0.9rem; }
    .error { color: #b00020; }
    #preview { overflow-x: auto; }
  </style>
</head>
<body>
  <h1>Real Intent to Pipedrive Converter</h1>
  <p>Upload a Real Intent CSV export to convert it into a file ready for the Pipedrive import wizard.</p>

  <form id="upload-form">
    <input type="file" id="file-input" name="file" accept=".csv" required>
    <button type="submit">Convert</button>
  </form>
  <p id="error" class="error" hidden></p>

  <p class="note">Columns outside the mapping below are not carried over. Re-create them in
  Pipedrive as custom fields and they can be mapped during import.</p>
  <table>
    <thead><tr><th>Real Intent column</th><th>Pipedrive column</th></tr></thead>
    <tbody>
      {{range .Mapping}}<tr><td>{{.Source}}</td><td>{{.Label}}</td></tr>
      {{end}}
    </tbody>
  </table>

  <section id="result" hidden>
    <h2>Preview</h2>
    <p id="summary"></p>
    <div id="preview"></div>
    <button id="download-button" type="button">Download {{.FileName}}</button>
  </section>

  <script>
    const DOWNLOAD_NAME = "{{.FileName}}";
    const PREVIEW_ROW_LIMIT = 50;

    const form = document.getElementById("upload-form");
    const fileInput = document.getElementById("file-input");
    const errorEl = document.getElementById("error");
    const resultEl = document.getElementById("result");
    const summaryEl = document.getElementById("summary");
    const previewEl = document.getElementById("preview");
    const downloadButton = document.getElementById("download-button");

    function showError(message) {
      errorEl.textContent = message;
      errorEl.hidden = false;
      resultEl.hidden = true;
    }

    function uploadBody() {
      const body = new FormData();
      body.append("file", fileInput.files[0]);
      return body;
    }

    async function readAPIError(response) {
      try {
        const apiError = await response.json();
        let message = apiError.message || "Conversion failed.";
        if (apiError.details && apiError.details.missing_columns) {
          message += " Missing: " + apiError.details.missing_columns.join(", ");
        }
        return message;
      } catch {
        return "Conversion failed (HTTP " + response.status + ").";
      }
    }

    function renderPreview(preview) {
      const table = document.createElement("table");
      const head = table.createTHead().insertRow();
      for (const column of preview.columns) {
        const th = document.createElement("th");
        th.textContent = column;
        head.appendChild(th);
      }
      const body = table.createTBody();
      for (const row of preview.rows.slice(0, PREVIEW_ROW_LIMIT)) {
        const tr = body.insertRow();
        for (const cell of row) {
          tr.insertCell().textContent = cell;
        }
      }
      previewEl.replaceChildren(table);

      let summary = preview.row_count + " row(s) converted from " + preview.file_name + ".";
      if (preview.row_count > PREVIEW_ROW_LIMIT) {
        summary += " Showing the first " + PREVIEW_ROW_LIMIT + ".";
      }
      summaryEl.textContent = summary;
    }

    form.addEventListener("submit", async (event) => {
      event.preventDefault();
      errorEl.hidden = true;
      if (fileInput.files.length === 0) {
        showError("Choose a CSV file first.");
        return;
      }

      const response = await fetch("/api/v1/conversions/preview", { method: "POST", body: uploadBody() });
      if (!response.ok) {
        showError(await readAPIError(response));
        return;
      }

      renderPreview(await response.json());
      resultEl.hidden = false;
    });

    downloadButton.addEventListener("click", async () => {
      const response = await fetch("/api/v1/conversions/download", { method: "POST", body: uploadBody() });
      if (!response.ok) {
        showError(await readAPIError(response));
        return;
      }

      const url = URL.createObjectURL(await response.blob());
      const link = document.createElement("a");
      link.href = url;
      link.download = DOWNLOAD_NAME;
      link.click();
      URL.revokeObjectURL(url);
    });
  </script>
</body>
</html>
`))
