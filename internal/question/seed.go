package question

import "time"

// Seed returns the starter questions used when no store file exists yet.
func Seed() []Question {
	return []Question{
		{
			ID:        "1",
			Question:  "How do I set up the Converse Desk in Salesforce?",
			Answer:    seedAnswer1,
			Timestamp: mustTime("2025-04-15T14:30:00Z"),
			Status:    StatusAnswered,
		},
		{
			ID:        "2",
			Question:  "How to troubleshoot integration issues with external systems?",
			Answer:    seedAnswer2,
			Timestamp: mustTime("2025-04-14T10:15:00Z"),
			Status:    StatusReviewed,
		},
		{
			ID:        "3",
			Question:  "What are best practices for managing user permissions?",
			Answer:    seedAnswer3,
			Timestamp: mustTime("2025-04-13T16:45:00Z"),
			Status:    StatusAnswered,
		},
	}
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

const (
	seedAnswer1 = `### Response Structure for Setting Up Converse Desk

1. **Introduction**
   - Setting up the Converse Desk involves configuring necessary settings in your Salesforce organization to ensure smooth functionality of SMS Magic.

2. **Issue Analysis**
   - **Function and Component**: The Converse Desk function relies mainly on configurations within Converse settings, sender ID assignments, and user permissions in Salesforce to manage incoming and outgoing messages. 

3. **Troubleshooting Steps**
   - **Access Converse Settings**: 
     - Log in to your Salesforce account and navigate to SMS Magic Converse Home.
     - Access the 'Converse Settings' section to configure the desk.
   
   - **Configuration of Notifications**:
     - **Sound Notification**: Go to Conversations under General Settings of Converse Desk. Enable the 'Play sound for incoming message' to receive sound notifications.
     - **Email Notification**: Ensure that email notifications for inbound messages in the Sender ID & Assignment section are turned on.
   
   - **Set Up Sender ID**:
     - Go to the Sender ID & Assignment section within Converse Settings and use "Add Sender ID" to set up the required Sender IDs.

   - **User Management**:
     - Navigate to the User Management section within Converse Settings to add users and assign the necessary licenses.

4. **Root Cause Analysis**
   - Common issues arise due to improper assignment of sender IDs, incorrect notification settings, or insufficient user permissions.

5. **Escalation and Handling**
   - If you encounter persistent issues after these configurations, consider reaching out to SMS Magic support by emailing care@screen-magic.com for further assistance.`

	seedAnswer2 = `### Response Structure for Troubleshooting Integration Issues

1. **Introduction**
   - Integration issues with external systems can stem from various sources including authentication problems, data format mismatches, or network connectivity issues.

2. **Issue Analysis**
   - **Common Integration Points**: API endpoints, authentication tokens, data mapping configurations, and network settings are the most common areas where issues occur.

3. **Troubleshooting Steps**
   - **Verify Credentials**: 
     - Check that all API keys, usernames, passwords, and tokens are valid and not expired.
     - Ensure that the integration user has appropriate permissions in both systems.
   
   - **Examine Logs**:
     - Review system logs for error messages related to the integration.
     - Check API call logs to see request/response details and identify failure points.
   
   - **Test Connectivity**:
     - Use a tool like Postman to test API endpoints directly.
     - Verify that firewalls and network settings allow communication between systems.

   - **Data Validation**:
     - Confirm that the data being sent matches the expected format and schema.
     - Look for special characters or encoding issues that might be causing problems.

4. **Root Cause Analysis**
   - Integration problems typically stem from configuration mismatches, timeout issues, or changes in either system that weren't properly synchronized.

5. **Escalation and Handling**
   - If standard troubleshooting doesn't resolve the issue, engage vendor support for both systems and provide them with detailed logs and steps to reproduce the problem.`

	seedAnswer3 = `### Response Structure for Managing User Permissions

1. **Introduction**
   - Effective user permission management is crucial for maintaining system security while ensuring users can perform their required tasks efficiently.

2. **Issue Analysis**
   - **Permission Models**: Role-based access control (RBAC) vs. attribute-based access control (ABAC) approaches each have different strengths for different organizational needs.

3. **Troubleshooting Steps**
   - **Implement Least Privilege Principle**: 
     - Assign users only the permissions they need to perform their job functions.
     - Regularly audit and remove unnecessary permissions.
   
   - **Use Role-Based Groups**:
     - Create logical role groups instead of assigning permissions individually.
     - Align roles with job functions rather than with specific individuals.
   
   - **Implement Approval Workflows**:
     - Create documented processes for requesting and approving permission changes.
     - Maintain an audit trail of who approved what changes and when.

   - **Regular Auditing**:
     - Schedule quarterly reviews of user permissions.
     - Automate detection of unused permissions or dormant accounts.

4. **Root Cause Analysis**
   - Permission issues often arise from lack of proper offboarding processes, role changes without permission updates, or ad-hoc permission grants without documentation.

5. **Escalation and Handling**
   - For complex permission issues, involve both security and department managers to balance security needs with operational requirements.`
)
