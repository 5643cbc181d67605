package service

// digestTemplate 摘要邮件模板，独立完整的 HTML 文档，样式内联以兼容邮件客户端
const digestTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .container {
            background-color: #ffffff;
            border-radius: 8px;
            padding: 30px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        h1 {
            color: #363636;
            font-size: 28px;
            margin-bottom: 10px;
        }
        h2 {
            color: #363636;
            font-size: 22px;
            margin-top: 30px;
            margin-bottom: 15px;
            border-bottom: 2px solid #3273dc;
            padding-bottom: 5px;
        }
        .note {
            margin-bottom: 25px;
            padding-bottom: 20px;
            border-bottom: 1px solid #e0e0e0;
        }
        .note:last-child {
            border-bottom: none;
        }
        .note-title {
            font-size: 18px;
            font-weight: 600;
            margin-bottom: 8px;
        }
        .note-title a {
            color: #3273dc;
            text-decoration: none;
        }
        .note-excerpt {
            color: #4a4a4a;
            margin-bottom: 8px;
        }
        .note-meta {
            font-size: 14px;
            color: #7a7a7a;
            margin-top: 8px;
        }
        .tags {
            margin-top: 8px;
        }
        .tag {
            display: inline-block;
            background-color: #f5f5f5;
            color: #4a4a4a;
            padding: 3px 10px;
            border-radius: 4px;
            font-size: 12px;
            margin-right: 5px;
            margin-bottom: 5px;
        }
        .footer {
            margin-top: 40px;
            padding-top: 20px;
            border-top: 1px solid #e0e0e0;
            text-align: center;
            font-size: 12px;
            color: #7a7a7a;
        }
        .footer a {
            color: #3273dc;
            text-decoration: none;
        }
        img {
            max-width: 100%;
            height: auto;
        }
        .no-notes {
            text-align: center;
            color: #7a7a7a;
            padding: 20px;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>Newsletter - {{.PeriodText}}</h1>
        <p style="color: #7a7a7a; margin-bottom: 20px;">Here are the latest notes and articles</p>
{{- if .Articles}}
        <h2>Articles</h2>
{{- range .Articles}}
{{template "digestNote" .}}
{{- end}}
{{- end}}
{{- if .Notes}}
        <h2>Bookmarks &amp; Notes ({{.NoteCount}})</h2>
{{- range .Notes}}
{{template "digestNote" .}}
{{- end}}
{{- else}}
        <div class="no-notes">No notes found for the {{.PeriodLower}}.</div>
{{- end}}
        <div class="footer">
            <p>View this newsletter online: <a href="{{.SiteURL}}/newsletter?period={{.PeriodParam}}">{{.SiteURL}}/newsletter</a></p>
            <p>This is an automated newsletter. To unsubscribe, please contact the administrator.</p>
        </div>
    </div>
</body>
</html>
{{define "digestNote"}}        <div class="note">
            <div class="note-title">
                <a href="{{.URL}}">{{.Title}}</a>
            </div>
{{- if .Excerpt}}
            <div class="note-excerpt">{{.Excerpt}}</div>
{{- end}}
            <div class="note-meta">{{.Date}}{{if .FolderTitle}} | {{.FolderTitle}}{{end}}</div>
{{- if .Tags}}
            <div class="tags">{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</div>
{{- end}}
        </div>{{end}}`
