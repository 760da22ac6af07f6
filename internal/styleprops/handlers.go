package styleprops

// Handler binds an abstract property to its physical Name and converter.
type Handler struct {
	Name    Name
	Convert Converter
}

// Entry is a named handler used to build tables in a stable order.
type Entry struct {
	Key     string
	Handler Handler
}

// Handlers is an immutable table from abstract property name to Handler.
type Handlers struct {
	order    []string
	handlers map[string]Handler
}

// NewHandlers builds a table. A key given twice keeps its first position and
// its last handler.
func NewHandlers(entries ...Entry) Handlers {
	h := Handlers{handlers: make(map[string]Handler, len(entries))}
	for _, e := range entries {
		if _, exists := h.handlers[e.Key]; !exists {
			h.order = append(h.order, e.Key)
		}
		h.handlers[e.Key] = e.Handler
	}
	return h
}

// Extend returns a new table holding every handler of h plus the given entries.
func (h Handlers) Extend(entries ...Entry) Handlers {
	all := make([]Entry, 0, len(h.order)+len(entries))
	for _, key := range h.order {
		all = append(all, Entry{Key: key, Handler: h.handlers[key]})
	}
	return NewHandlers(append(all, entries...)...)
}

// Lookup returns the handler for an abstract property.
func (h Handlers) Lookup(key string) (Handler, bool) {
	handler, ok := h.handlers[key]
	return handler, ok
}

// Keys lists the abstract properties in definition order.
func (h Handlers) Keys() []string {
	keys := make([]string, len(h.order))
	copy(keys, h.order)
	return keys
}

// Len returns the number of abstract properties in the table.
func (h Handlers) Len() int {
	return len(h.order)
}

func entry(key string, name Name, convert Converter) Entry {
	return Entry{Key: key, Handler: Handler{Name: name, Convert: convert}}
}

// BaseStyleProps covers layout, sizing, positioning, flex and grid placement.
var BaseStyleProps = NewHandlers(
	entry("margin", Literal("margin"), DimensionValue),
	entry("marginStart", Flip("marginLeft", "marginRight"), DimensionValue),
	entry("marginEnd", Flip("marginRight", "marginLeft"), DimensionValue),
	entry("marginTop", Literal("marginTop"), DimensionValue),
	entry("marginBottom", Literal("marginBottom"), DimensionValue),
	entry("marginX", Names("marginLeft", "marginRight"), DimensionValue),
	entry("marginY", Names("marginTop", "marginBottom"), DimensionValue),
	entry("width", Literal("width"), DimensionValue),
	entry("height", Literal("height"), DimensionValue),
	entry("minWidth", Literal("minWidth"), DimensionValue),
	entry("minHeight", Literal("minHeight"), DimensionValue),
	entry("maxWidth", Literal("maxWidth"), DimensionValue),
	entry("maxHeight", Literal("maxHeight"), DimensionValue),
	entry("isHidden", Literal("display"), HiddenValue),
	entry("alignSelf", Literal("alignSelf"), PassthroughValue),
	entry("justifySelf", Literal("justifySelf"), PassthroughValue),
	entry("position", Literal("position"), AnyValue),
	entry("zIndex", Literal("zIndex"), AnyValue),
	entry("top", Literal("top"), DimensionValue),
	entry("bottom", Literal("bottom"), DimensionValue),
	entry("start", Flip("left", "right"), DimensionValue),
	entry("end", Flip("right", "left"), DimensionValue),
	entry("left", Literal("left"), DimensionValue),
	entry("right", Literal("right"), DimensionValue),
	entry("order", Literal("order"), AnyValue),
	entry("flex", Literal("flex"), FlexValue),
	entry("flexGrow", Literal("flexGrow"), PassthroughValue),
	entry("flexShrink", Literal("flexShrink"), PassthroughValue),
	entry("flexBasis", Literal("flexBasis"), PassthroughValue),
	entry("gridArea", Literal("gridArea"), PassthroughValue),
	entry("gridColumn", Literal("gridColumn"), PassthroughValue),
	entry("gridColumnEnd", Literal("gridColumnEnd"), PassthroughValue),
	entry("gridColumnStart", Literal("gridColumnStart"), PassthroughValue),
	entry("gridRow", Literal("gridRow"), PassthroughValue),
	entry("gridRowEnd", Literal("gridRowEnd"), PassthroughValue),
	entry("gridRowStart", Literal("gridRowStart"), PassthroughValue),
)

// ViewStyleProps adds background, border and padding props to BaseStyleProps.
var ViewStyleProps = BaseStyleProps.Extend(
	entry("backgroundColor", Literal("backgroundColor"), BackgroundColorValue),
	entry("borderWidth", Literal("borderWidth"), BorderSizeValue),
	entry("borderStartWidth", Flip("borderLeftWidth", "borderRightWidth"), BorderSizeValue),
	entry("borderEndWidth", Flip("borderRightWidth", "borderLeftWidth"), BorderSizeValue),
	entry("borderLeftWidth", Literal("borderLeftWidth"), BorderSizeValue),
	entry("borderRightWidth", Literal("borderRightWidth"), BorderSizeValue),
	entry("borderTopWidth", Literal("borderTopWidth"), BorderSizeValue),
	entry("borderBottomWidth", Literal("borderBottomWidth"), BorderSizeValue),
	entry("borderXWidth", Names("borderLeftWidth", "borderRightWidth"), BorderSizeValue),
	entry("borderYWidth", Names("borderTopWidth", "borderBottomWidth"), BorderSizeValue),
	entry("borderColor", Literal("borderColor"), BorderColorValue),
	entry("borderStartColor", Flip("borderLeftColor", "borderRightColor"), BorderColorValue),
	entry("borderEndColor", Flip("borderRightColor", "borderLeftColor"), BorderColorValue),
	entry("borderLeftColor", Literal("borderLeftColor"), BorderColorValue),
	entry("borderRightColor", Literal("borderRightColor"), BorderColorValue),
	entry("borderTopColor", Literal("borderTopColor"), BorderColorValue),
	entry("borderBottomColor", Literal("borderBottomColor"), BorderColorValue),
	entry("borderXColor", Names("borderLeftColor", "borderRightColor"), BorderColorValue),
	entry("borderYColor", Names("borderTopColor", "borderBottomColor"), BorderColorValue),
	entry("borderRadius", Literal("borderRadius"), BorderRadiusValue),
	entry("borderTopStartRadius", Flip("borderTopLeftRadius", "borderTopRightRadius"), BorderRadiusValue),
	entry("borderTopEndRadius", Flip("borderTopRightRadius", "borderTopLeftRadius"), BorderRadiusValue),
	entry("borderBottomStartRadius", Flip("borderBottomLeftRadius", "borderBottomRightRadius"), BorderRadiusValue),
	entry("borderBottomEndRadius", Flip("borderBottomRightRadius", "borderBottomLeftRadius"), BorderRadiusValue),
	entry("borderTopLeftRadius", Literal("borderTopLeftRadius"), BorderRadiusValue),
	entry("borderTopRightRadius", Literal("borderTopRightRadius"), BorderRadiusValue),
	entry("borderBottomLeftRadius", Literal("borderBottomLeftRadius"), BorderRadiusValue),
	entry("borderBottomRightRadius", Literal("borderBottomRightRadius"), BorderRadiusValue),
	entry("padding", Literal("padding"), DimensionValue),
	entry("paddingStart", Flip("paddingLeft", "paddingRight"), DimensionValue),
	entry("paddingEnd", Flip("paddingRight", "paddingLeft"), DimensionValue),
	entry("paddingLeft", Literal("paddingLeft"), DimensionValue),
	entry("paddingRight", Literal("paddingRight"), DimensionValue),
	entry("paddingTop", Literal("paddingTop"), DimensionValue),
	entry("paddingBottom", Literal("paddingBottom"), DimensionValue),
	entry("paddingX", Names("paddingLeft", "paddingRight"), DimensionValue),
	entry("paddingY", Names("paddingTop", "paddingBottom"), DimensionValue),
	entry("overflow", Literal("overflow"), PassthroughValue),
)

// HandlersByName returns one of the prebuilt tables by its short name.
func HandlersByName(name string) (Handlers, bool) {
	switch name {
	case "base":
		return BaseStyleProps, true
	case "view":
		return ViewStyleProps, true
	default:
		return Handlers{}, false
	}
}
