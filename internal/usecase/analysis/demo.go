package analysis

// DemoTranscript stands in for the transcription of uploaded audio
const DemoTranscript = `
John: Let's go over the key items for our new project launch.
Jane: I think we should prioritize the user onboarding flow first.
Alex: Agreed. The current flow has too much friction.
John: OK, decision made. We'll prioritize redesigning the onboarding flow.
Jane: I can take that on. I'll have designs ready by next Friday.
John: Great. Next item is the marketing campaign. I believe we should delay it until the new features are ready.
Alex: That makes sense. Let's push it to July instead of June.
John: Decision made. Marketing campaign moves to July.
Alex: I'll update the marketing team and adjust the timeline.
John: Perfect. Any other items?
Jane: We need to decide on the budget for user testing.
John: Let's allocate $5,000 for this round.
Alex: That works for me.
John: Decision made. $5,000 for user testing.
Jane: I'll coordinate with the finance team to secure that budget.
John: Thanks everyone, meeting adjourned.
`
