package waylay

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for interception lifecycle events.
var (
	SignalMethodDefined       = capitan.NewSignal("waylay.method.defined", "Instance method defined on a class")
	SignalMethodRemoved       = capitan.NewSignal("waylay.method.removed", "Instance method removed from a class")
	SignalInterceptRegistered = capitan.NewSignal("waylay.intercept.registered", "Handler registered for method names")
	SignalInterceptReleased   = capitan.NewSignal("waylay.intercept.released", "Handler registration removed")
	SignalForwarderInstalled  = capitan.NewSignal("waylay.forwarder.installed", "Forwarding method installed in a surface")
	SignalForwarderRemoved    = capitan.NewSignal("waylay.forwarder.removed", "Forwarding method removed from a surface")
	SignalRegistryForked      = capitan.NewSignal("waylay.registry.forked", "Inherited registry copied on first own mutation")
	SignalScopeCreated        = capitan.NewSignal("waylay.scope.created", "Per-object override scope created")
)

// Keys for typed event data.
var (
	KeyClass     = capitan.NewStringKey("class")
	KeyMethod    = capitan.NewStringKey("method")
	KeyScope     = capitan.NewStringKey("scope")
	KeyNameCount = capitan.NewIntKey("name_count")
)

// Scope kinds reported under KeyScope.
const (
	scopeClass  = "class"
	scopeObject = "object"
)

// emitMethodDefined emits an event when a method is (re)defined on a class.
func emitMethodDefined(class, method string) {
	capitan.Emit(context.Background(), SignalMethodDefined,
		KeyClass.Field(class),
		KeyMethod.Field(method),
	)
}

// emitMethodRemoved emits an event when a method is removed from a class.
func emitMethodRemoved(class, method string) {
	capitan.Emit(context.Background(), SignalMethodRemoved,
		KeyClass.Field(class),
		KeyMethod.Field(method),
	)
}

// emitInterceptRegistered emits an event when a handler is registered.
func emitInterceptRegistered(class, scope string, names int) {
	capitan.Emit(context.Background(), SignalInterceptRegistered,
		KeyClass.Field(class),
		KeyScope.Field(scope),
		KeyNameCount.Field(names),
	)
}

// emitInterceptReleased emits an event when registrations are removed.
func emitInterceptReleased(class, scope string, names int) {
	capitan.Emit(context.Background(), SignalInterceptReleased,
		KeyClass.Field(class),
		KeyScope.Field(scope),
		KeyNameCount.Field(names),
	)
}

// emitForwarderInstalled emits an event when a forwarder becomes active.
func emitForwarderInstalled(class, scope, method string) {
	capitan.Emit(context.Background(), SignalForwarderInstalled,
		KeyClass.Field(class),
		KeyScope.Field(scope),
		KeyMethod.Field(method),
	)
}

// emitForwarderRemoved emits an event when a forwarder is deactivated.
func emitForwarderRemoved(class, scope, method string) {
	capitan.Emit(context.Background(), SignalForwarderRemoved,
		KeyClass.Field(class),
		KeyScope.Field(scope),
		KeyMethod.Field(method),
	)
}

// emitRegistryForked emits an event when a copy-on-write fork occurs.
func emitRegistryForked(class string, entries int) {
	capitan.Emit(context.Background(), SignalRegistryForked,
		KeyClass.Field(class),
		KeyNameCount.Field(entries),
	)
}

// emitScopeCreated emits an event when an object grows its own scope.
func emitScopeCreated(class string) {
	capitan.Emit(context.Background(), SignalScopeCreated,
		KeyClass.Field(class),
	)
}
