package gin

// indexHTML is the upload form: a PDF file picker, a question textarea, and
// a submit button posting to /ask.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Document Q&amp;A</title>
</head>
<body>
<h1>Document Question &amp; Answer</h1>
<p>Upload a PDF document and ask questions about its contents.</p>
<form method="post" action="/ask" enctype="multipart/form-data">
<p><input type="file" name="document" accept="application/pdf"></p>
<p><textarea name="question" rows="4" cols="60" placeholder="Enter your question about the document:"></textarea></p>
<p><button type="submit">Submit</button></p>
</form>
</body>
</html>
`
