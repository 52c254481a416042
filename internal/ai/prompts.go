package ai

import "fmt"

const systemPrompt = `You are a YouTube growth expert. You analyze and improve video titles for click-through rate and searchability. Always answer in exactly the format the user asks for, with no markdown code fences and no commentary.`

const scorePromptFormat = `Score this YouTube title for engagement potential:

Title: %s

Return ONLY a JSON object with this exact shape:
{
  "overall": <0-100 integer>,
  "breakdown": {
    "length": <0-100>,
    "keywords": <0-100>,
    "engagement": <0-100>,
    "clarity": <0-100>,
    "trending": <0-100>
  },
  "improvements": [<up to 4 short suggestion strings>],
  "strengths": [<up to 3 short strings>]
}`

const rewritePromptFormat = `Rewrite this YouTube title into 5 higher-performing variants. Keep each under 70 characters, keep the original meaning, vary the hook.

Title: %s

Respond with one variant per line. No numbering, bullets or other text.`

const ideasPromptFormat = `Suggest 5 YouTube video ideas around the topic "%s" for an Indian audience.

Return ONLY a JSON array of objects with this exact shape:
[
  {
    "title": "<catchy video title>",
    "description": "<1-2 sentence description>",
    "hashtags": ["<tag>", "<tag>", "<tag>"]
  }
]`

func scorePrompt(title string) string {
	return fmt.Sprintf(scorePromptFormat, title)
}

func rewritePrompt(title string) string {
	return fmt.Sprintf(rewritePromptFormat, title)
}

func ideasPrompt(keyword string) string {
	return fmt.Sprintf(ideasPromptFormat, keyword)
}
