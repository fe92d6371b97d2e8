// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ToolUnavailableId Id = iota + 1
	InstanceUnconfiguredId
	ConnectivityFailedId
	JobAlreadyRunningId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	toolUnavailableIssue = &Issue{
		id: ToolUnavailableId,
		mdMsg: `
# Job tool not found!

The external job tool could not be located on your PATH. ccexport only
orchestrates exports; the tool itself performs the authenticated job
execution and archive download.

## Things you can try:
- Install the tool:
~~~
$ npm install -g b2c-cli
~~~

- Verify it is reachable:
~~~
$ b2c-cli --version
~~~

- If it is installed under a different name, point ccexport at it:
~~~
$ export CCEXPORT_BINARY_NAME=/path/to/the/tool
~~~`,
	}

	instanceUnconfiguredIssue = &Issue{
		id: InstanceUnconfiguredId,
		mdMsg: `
# No instance credentials found!

No credentials file was found and the environment fallback is not set.

## Things you can try:
- Create a dw.json in your working directory:
~~~json
{
  "hostname": "your-sandbox.demandware.net",
  "client-id": "...",
  "client-secret": "..."
}
~~~

- Or export the environment fallback:
~~~
$ export SFCC_SERVER=your-sandbox.demandware.net
$ export SFCC_CLIENT_ID=...
$ export SFCC_CLIENT_SECRET=...
~~~

- Or pass a named credential profile with --instance`,
	}

	connectivityFailedIssue = &Issue{
		id: ConnectivityFailedId,
		mdMsg: `
# Instance not reachable!

The pre-flight probe could not reach the configured instance.

## Things you can try:
- Check the hostname in your credentials for typos
- Confirm the sandbox is started and not hibernating
- Check VPN/network connectivity to the instance
- Verify the API client is enabled in Account Manager`,
	}

	jobAlreadyRunningIssue = &Issue{
		id: JobAlreadyRunningId,
		mdMsg: `
# An export job is already running!

The instance accepts only one export job at a time, and one is currently
in progress (or stuck).

## Things you can try:
- Wait for the running job to finish, then retry
- Check Administration > Operations > Jobs on the instance and cancel a
  stuck job
- If the job was started by this tool and interrupted, it usually clears
  within a few minutes`,
	}

	issues = map[Id]*Issue{
		ToolUnavailableId:      toolUnavailableIssue,
		InstanceUnconfiguredId: instanceUnconfiguredIssue,
		ConnectivityFailedId:   connectivityFailedIssue,
		JobAlreadyRunningId:    jobAlreadyRunningIssue,
	}
)

// Get returns the catalog entry for id, or nil when unknown.
func Get(id Id) *Issue {
	return issues[id]
}

// Ids returns every catalog id in ascending order.
func Ids() []Id {
	ids := maps.Keys(issues)
	slices.Sort(ids)
	return ids
}
