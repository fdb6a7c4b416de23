package server

import (
	"fmt"

	"github.com/bindkit-dev/bindkit/pkg/dom"
)

// clientScript is the bridge client injected into the served page. It
// attaches one native listener per declared event on every bindable
// element and forwards each firing over the WebSocket as an event
// frame. Formatting verbs: events attribute name, token delimiter.
const clientScript = `(function () {
  var ATTR = %q;
  var DELIM = %q;
  var seq = 0;
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/bindkit/ws");

  function payloadFor(e) {
    var p = {};
    if (e.target && "value" in e.target) p.value = e.target.value;
    if (typeof e.key === "string") p.key = e.key;
    if (typeof e.clientX === "number") { p.x = e.clientX; p.y = e.clientY; }
    return p;
  }

  function forward(id, name) {
    return function (e) {
      if (ws.readyState !== WebSocket.OPEN) return;
      seq++;
      ws.send(JSON.stringify({
        t: "event",
        p: { seq: seq, target: id, event: name, payload: payloadFor(e) }
      }));
    };
  }

  ws.addEventListener("open", function () {
    var els = document.querySelectorAll("[" + CSS.escape(ATTR) + "]");
    els.forEach(function (el) {
      var id = el.id;
      if (!id) return;
      (el.getAttribute(ATTR) || "").split(DELIM).forEach(function (name) {
        name = name.trim();
        if (name) el.addEventListener(name, forward(id, name));
      });
    });
  });

  ws.addEventListener("message", function (msg) {
    var frame;
    try { frame = JSON.parse(msg.data); } catch (e) { return; }
    if (frame.t === "ping") ws.send(JSON.stringify({ t: "pong" }));
    if (frame.t === "error") console.error("bindkit:", frame.p);
  });
})();`

// injectClient appends the bridge script to the document's body, or to
// the root when there is no body.
func injectClient(doc *dom.Document, eventsAttr, delimiter string) {
	script := dom.Script(fmt.Sprintf(clientScript, eventsAttr, delimiter))

	var body *dom.Element
	doc.Walk(func(e *dom.Element) bool {
		if e.Tag == "body" {
			body = e
			return false
		}
		return true
	})

	if body != nil {
		body.AppendChild(script)
	} else if doc.Root != nil {
		doc.Root.AppendChild(script)
	}
}
