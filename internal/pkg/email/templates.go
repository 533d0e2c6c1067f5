package email

// Email templates in HTML format

// BaseTemplate is the base layout for all emails
const BaseTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body {
            margin: 0;
            padding: 0;
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background-color: #fff5f7;
            color: #333333;
        }
        .container {
            max-width: 600px;
            margin: 0 auto;
            padding: 40px 20px;
        }
        .card {
            background: #ffffff;
            border-radius: 12px;
            padding: 32px;
            border: 1px solid #ffe0e6;
        }
        .logo {
            text-align: center;
            margin-bottom: 24px;
        }
        .logo h1 {
            font-size: 28px;
            color: #F60945;
            margin: 0;
        }
        h2 {
            color: #333333;
            font-size: 24px;
            margin: 0 0 16px;
        }
        p {
            color: #666666;
            font-size: 16px;
            line-height: 1.6;
            margin: 0 0 16px;
        }
        .btn {
            display: inline-block;
            background: #F60945;
            color: #ffffff !important;
            text-decoration: none;
            padding: 14px 28px;
            border-radius: 8px;
            font-weight: 600;
            font-size: 16px;
            margin: 16px 0;
        }
        .footer {
            text-align: center;
            margin-top: 32px;
            color: #999999;
            font-size: 12px;
        }
        .highlight {
            color: #F60945;
            font-weight: 600;
        }
        .info-box {
            background: #fff5f7;
            border-radius: 8px;
            padding: 16px;
            margin: 16px 0;
        }
        .portrait {
            width: 100%;
            border-radius: 8px;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="card">
            <div class="logo">
                <h1>Super Mom Maker</h1>
            </div>
            {{.Content}}
        </div>
        <div class="footer">
            <p>Celebrate the superhero in your life. #SuperMomMaker</p>
        </div>
    </div>
</body>
</html>
`

// OTPTemplate - one-time login code
const OTPTemplate = `
<h2>Your login code</h2>
<p>Use the code below to sign in to Super Mom Maker:</p>
<div class="info-box" style="text-align: center;">
    <p style="font-size: 32px; font-weight: 700; letter-spacing: 8px; color: #F60945; margin: 0;">{{.Code}}</p>
</div>
<p>The code expires in 10 minutes and can only be used once.</p>
<p style="color: #999;">If you did not request this code, you can safely ignore this email.</p>
`

// ShareTemplate - a superhero portrait shared with a recipient
const ShareTemplate = `
<h2>Someone made a superhero portrait for you!</h2>
{{if .SenderName}}<p><span class="highlight">{{.SenderName}}</span> turned a special mom into a superhero and wanted you to see it.</p>
{{else}}<p>A special mom has been turned into a superhero, and you were chosen to see it.</p>{{end}}
{{if .ThemeName}}<p>Theme: <span class="highlight">{{.ThemeName}}</span></p>{{end}}
{{if .Message}}<div class="info-box"><p>"{{.Message}}"</p></div>{{end}}
<img class="portrait" src="{{.ImageURL}}" alt="Superhero portrait"/>
<a href="{{.ImageURL}}" class="btn">View the portrait</a>
<p style="color: #999;">Made with Super Mom Maker.</p>
`

// LegacyShareTemplate - generic share used by the older share endpoint
const LegacyShareTemplate = `
<h2>A superhero portrait was shared with you</h2>
{{if .Message}}<div class="info-box"><p>"{{.Message}}"</p></div>{{end}}
<a href="{{.ImageURL}}" class="btn">View the image</a>
`
