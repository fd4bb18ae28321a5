package ai

import (
	"fmt"
	"strings"
)

const resumeAnalyzerPrompt = `You are an ATS (Applicant Tracking System) resume analyzer. Review the attached PDF resume and score it the way an ATS used by large companies would.

Return strict JSON with this structure:
{
  "ats_score": number,
  "summary": string,
  "strengths": [string],
  "weaknesses": [string],
  "missing_keywords": [string],
  "improvement_suggestions": [string]
}

ats_score is an integer between 0 and 100. Return ONLY the raw JSON without any markdown formatting, code blocks, or additional text.`

func careerGuidancePrompt(skills []string) string {
	return fmt.Sprintf(`You are a career counsellor for software and technology roles. A candidate has the following skills: %s.

Suggest career paths that fit this skill set.

Return strict JSON with this structure:
{
  "recommended_roles": [
    {
      "title": string,
      "match_reason": string,
      "skills_to_learn": [string]
    }
  ],
  "overall_advice": string
}

Recommend at most 5 roles, best match first. Return ONLY the raw JSON without any markdown formatting, code blocks, or additional text.`, strings.Join(skills, ", "))
}
