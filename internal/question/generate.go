package question

import "fmt"

const generatedAnswerTemplate = `### Response Structure for %s

1. **Introduction**
   - This is an auto-generated response to your question.

2. **Issue Analysis**
   - **Function and Component**: In a real system, this would analyze your specific question.

3. **Troubleshooting Steps**
   - **Step 1**: This is where custom troubleshooting steps would be provided.
   - **Step 2**: Additional steps would be shown here based on your specific question.

4. **Root Cause Analysis**
   - In a production environment, this would provide insights into the possible root causes.

5. **Escalation and Handling**
   - Recommendations for further action would be provided here.`

// GeneratedAnswer returns the placeholder structured answer for a question.
func GeneratedAnswer(question string) string {
	return fmt.Sprintf(generatedAnswerTemplate, question)
}
