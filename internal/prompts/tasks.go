// Package prompts holds the fixed prompt templates and generation
// parameters for every AI task the recruiting backend performs, plus the
// placeholder renderer that turns a template into a final request string.
package prompts

// Task identifies one of the fixed AI tasks supported by the backend.
type Task string

// Supported tasks. Lookup rejects anything outside this set.
const (
	TaskResumeExtraction        Task = "resumeExtraction"
	TaskEmailGeneration         Task = "emailGeneration"
	TaskExperienceSummarization Task = "experienceSummarization"
	TaskJobMatching             Task = "jobMatching"
)

// Template pairs a prompt body with a description of the JSON output
// contract the completion service is asked to honor. Bodies contain
// {placeholder} markers filled in by Render.
type Template struct {
	Task           Task
	Body           string
	OutputContract string
}

// ParameterSet holds the generation parameters sent alongside a rendered
// prompt. One fixed set per task; there is no inheritance between tasks.
type ParameterSet struct {
	MaxOutputTokens int32
	Temperature     float32
	TopP            float32
}

var templates = map[Task]Template{
	TaskResumeExtraction: {
		Task: TaskResumeExtraction,
		Body: `You are an expert resume parser for a recruiting platform.
Extract structured information from the resume text below. COPY TEXT
VERBATIM where possible - do not paraphrase or invent experience that is
not explicitly mentioned.

Return ONLY a single valid JSON object with this structure:
{
  "personalInfo": {"name": string, "email": string, "phone": string, "location": string},
  "workExperience": [{"title": string, "company": string, "startDate": string, "endDate": string, "highlights": [string]}],
  "education": [{"degree": string, "institution": string, "year": string}],
  "skills": [string],
  "certifications": [string]
}

Do not include markdown, code fences, or any text before or after the JSON.

Resume text:
"""
{resumeText}
"""`,
		OutputContract: "JSON object with personalInfo, workExperience, education, skills and certifications fields extracted verbatim from the resume.",
	},
	TaskEmailGeneration: {
		Task: TaskEmailGeneration,
		Body: `You are a professional recruiter writing an outreach email.
Write a concise, personalized email inviting the candidate to discuss the
role. Keep the tone warm and professional, under 200 words, and do not
oversell or invent details.

Candidate name: {candidateName}
Role: {jobTitle}
Company: {companyName}
Sender: {recruiterName}
Additional context: {additionalContext}

Return ONLY a single valid JSON object:
{
  "subject": string,
  "body": string
}

No markdown, no explanations, nothing outside the JSON object.`,
		OutputContract: "JSON object with subject and body fields containing the ready-to-send email.",
	},
	TaskExperienceSummarization: {
		Task: TaskExperienceSummarization,
		Body: `You are an expert career analyst. Summarize the candidate work
history below for a recruiter who has 30 seconds to read it. Base the
summary only on the provided text.

Work history:
"""
{workHistory}
"""

Return ONLY a single valid JSON object:
{
  "summary": string,
  "totalYearsExperience": number,
  "keyStrengths": [string],
  "seniorityLevel": string
}

No markdown, no text before or after the JSON.`,
		OutputContract: "JSON object with summary, totalYearsExperience, keyStrengths and seniorityLevel fields.",
	},
	TaskJobMatching: {
		Task: TaskJobMatching,
		Body: `You are an expert AI career assistant that evaluates how well a
candidate profile matches a set of job requirements.

Compare the candidate profile with the job requirements, identify relevant
experience and skills, point out missing or weak areas, and assign an
overall match score from 0 to 100. Base all reasoning only on the provided
text; do not assume experience that is not explicitly mentioned.

Candidate profile:
"""
{candidateProfile}
"""

Job requirements:
"""
{jobRequirements}
"""

Return ONLY a single valid JSON object:
{
  "overallMatchScore": number,
  "matchAnalysis": string,
  "strengths": [string],
  "gaps": [string],
  "recommendation": string
}

No markdown, no explanations, nothing outside the JSON object.`,
		OutputContract: "JSON object with overallMatchScore (0-100), matchAnalysis, strengths, gaps and recommendation fields.",
	},
}

var parameters = map[Task]ParameterSet{
	TaskResumeExtraction:        {MaxOutputTokens: 2048, Temperature: 0.1, TopP: 0.95},
	TaskEmailGeneration:         {MaxOutputTokens: 1024, Temperature: 0.7, TopP: 0.95},
	TaskExperienceSummarization: {MaxOutputTokens: 512, Temperature: 0.3, TopP: 0.9},
	TaskJobMatching:             {MaxOutputTokens: 1024, Temperature: 0.2, TopP: 0.9},
}

// Lookup returns the template and generation parameters for a task.
// Both maps are populated at init and never mutated, so Lookup is safe for
// concurrent use without coordination.
func Lookup(task Task) (Template, ParameterSet, error) {
	tmpl, ok := templates[task]
	if !ok {
		return Template{}, ParameterSet{}, &UnknownTaskError{Task: task}
	}
	return tmpl, parameters[task], nil
}

// Tasks returns the fixed set of supported tasks.
func Tasks() []Task {
	return []Task{
		TaskResumeExtraction,
		TaskEmailGeneration,
		TaskExperienceSummarization,
		TaskJobMatching,
	}
}
