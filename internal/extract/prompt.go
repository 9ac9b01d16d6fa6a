package extract

import "fmt"

// targetSchema describes the JSON document the extraction model must
// produce. Kept close to the wire shape RawManual decodes.
const targetSchema = `{
  "title": "string (Main title of the manual - translated to English)",
  "features": ["string (List of key product features - translated to English, if present)"],
  "specialFeatures": ["string (List of special characteristics or highlights - translated to English, if present)"],
  "sourcePdfPath": "string (Path to the original document used for generation)",
  "tabs": [
    {
      "id": "string (MUST be one of: 'systemRequirements', 'hardwareInstallation', 'driverInstallation', 'softwareInstallation', 'usage')",
      "title": "string (MUST be one of: 'System Requirements', 'Hardware Installation', 'Driver Installation', 'Software Installation', 'Usage')",
      "type": "'list' | 'steps' | 'text' (The type of content this tab holds)",
      "content": "string[] | {warning?, steps: [{id, text}], note?} | string (structure depends on 'type')"
    }
  ]
}`

// BuildManualPrompt constructs the extraction prompt for one source
// document. sourcePath is echoed into the output so the result carries
// its own idempotency key.
func BuildManualPrompt(sourcePath string) string {
	return fmt.Sprintf(`Analyze the provided technical manual content. Structure its content into a JSON object adhering to the schema described below.
IMPORTANT: Translate ALL extracted text content into English.
Set the sourcePdfPath field to %q.

Target JSON Schema Description:
%s

Detailed Instructions:
1. Identify the main title (English).
2. Extract top-level features and specialFeatures lists (English).
3. Identify content for ONLY these core topics: System Requirements, Hardware Installation/Setup, Driver Installation, Software Installation/Application Setup, Usage/Operation.
4. Create a maximum of 5 tab objects in the tabs array for these core topics. Group related content logically. Do NOT create tabs for other sections.
5. For each core topic tab, use the specific id and title (e.g. id: 'systemRequirements', title: 'System Requirements'). Determine type ('list', 'steps', 'text') and populate content accordingly.
6. Omit tabs for missing core topics.
7. Ensure the final output is ONLY the valid JSON object.`, sourcePath, targetSchema)
}

// BuildAnswerPrompt constructs the grounded question-answering prompt
// over the serialized knowledge corpus.
func BuildAnswerPrompt(question, knowledge string) string {
	return fmt.Sprintf(`Context: You are a helpful assistant knowledgeable about the technical manuals provided below in JSON format. Answer the user's question based only on the information contained within this JSON data. If the answer cannot be found in the provided data, say "I cannot find information about that in the provided manuals."

Provided Manuals Data (JSON):
%s

User Question: %s

Answer:`, knowledge, question)
}
